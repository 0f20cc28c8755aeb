package watchlist

import (
	"context"
	"fmt"

	"github.com/desertthunder/watchlist/internal/models"
)

// DefaultAdminName is the display name used when the admin is created without one.
const DefaultAdminName = "Admin"

// Fixture is a seed movie inserted by [Service.Forge].
type Fixture struct {
	Title string
	Year  string
}

// Fixtures is the fixed seed list.
var Fixtures = []Fixture{
	{"My Neighbor Totoro", "1988"},
	{"Dead Poets Society", "1989"},
	{"A Perfect World", "1993"},
	{"Leon", "1994"},
	{"Mahjong", "1996"},
	{"Swallowtail Butterfly", "1996"},
	{"King of Comedy", "1999"},
	{"Devils on the Doorstep", "1999"},
	{"WALL-E", "2008"},
	{"The Pork of Music", "2012"},
}

// ForgeResult summarizes what [Service.Forge] wrote.
type ForgeResult struct {
	Admin        *models.User
	AdminCreated bool
	Movies       []*models.Movie
	// Total is the number of movies stored after seeding.
	Total        int
}

// Forge seeds the admin with the given display name plus every movie in [Fixtures].
//
// An existing admin is renamed rather than duplicated. Movies are always appended. The admin is
// saved before the movies, so it is kept when seeding the movies fails.
func (s *Service) Forge(ctx context.Context, name string) (*ForgeResult, error) {
	if name == "" {
		name = DefaultAdminName
	}
	name, err := models.ValidateName(name)
	if err != nil {
		return nil, err
	}

	admin, err := s.Admin(ctx)
	if err != nil {
		return nil, err
	}

	result := &ForgeResult{AdminCreated: admin == nil}
	if admin == nil {
		admin = &models.User{Name: name}
		err = s.users.Create(ctx, admin)
	} else {
		admin.Name = name
		err = s.users.Update(ctx, admin)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to save admin: %w", err)
	}
	result.Admin = admin

	movies := make([]*models.Movie, 0, len(Fixtures))
	for _, f := range Fixtures {
		movies = append(movies, &models.Movie{Title: f.Title, Year: f.Year})
	}
	if err := s.movies.CreateMany(ctx, movies); err != nil {
		return nil, fmt.Errorf("failed to seed movies: %w", err)
	}
	result.Movies = movies

	if result.Total, err = s.movies.Count(ctx); err != nil {
		return nil, err
	}

	s.logger.Info("forged fixtures", "admin", admin.Name, "movies", len(movies))
	return result, nil
}
