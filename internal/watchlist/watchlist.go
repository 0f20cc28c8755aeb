// package watchlist implements the movie and admin operations behind the web handlers and CLI
package watchlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/shared"
)

// MovieStore is the persistence the service needs for movies.
type MovieStore interface {
	Create(ctx context.Context, movie *models.Movie) error
	CreateMany(ctx context.Context, movies []*models.Movie) error
	Get(ctx context.Context, id int64) (*models.Movie, error)
	List(ctx context.Context) ([]*models.Movie, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id int64) error
}

// UserStore is the persistence the service needs for the admin account.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	First(ctx context.Context) (*models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// Service validates input and coordinates the movie and user stores.
type Service struct {
	movies MovieStore
	users  UserStore
	logger *log.Logger
}

// NewService creates a [Service]. A nil logger falls back to [shared.NewLogger].
func NewService(movies MovieStore, users UserStore, logger *log.Logger) *Service {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Service{movies: movies, users: users, logger: shared.WithLogger(logger, "component", "watchlist")}
}

// CreateMovie validates and stores a new movie.
func (s *Service) CreateMovie(ctx context.Context, title, year string) (*models.Movie, error) {
	title, year, err := models.ValidateMovie(title, year)
	if err != nil {
		return nil, err
	}

	movie := &models.Movie{Title: title, Year: year}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info("movie created", "id", movie.ID, "title", movie.Title)
	return movie, nil
}

// ListMovies returns every movie in insertion order.
func (s *Service) ListMovies(ctx context.Context) ([]*models.Movie, error) {
	return s.movies.List(ctx)
}

// GetMovie returns one movie or an error wrapping [shared.ErrNotFound].
func (s *Service) GetMovie(ctx context.Context, id int64) (*models.Movie, error) {
	return s.movies.Get(ctx, id)
}

// UpdateMovie validates the new title and year and overwrites an existing movie.
// The stored movie is unchanged when validation fails or the id is unknown.
func (s *Service) UpdateMovie(ctx context.Context, id int64, title, year string) (*models.Movie, error) {
	title, year, err := models.ValidateMovie(title, year)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	movie.Title, movie.Year = title, year
	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, err
	}

	s.logger.Info("movie updated", "id", movie.ID, "title", movie.Title)
	return movie, nil
}

// DeleteMovie removes a movie or returns an error wrapping [shared.ErrNotFound].
func (s *Service) DeleteMovie(ctx context.Context, id int64) error {
	if err := s.movies.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("movie deleted", "id", id)
	return nil
}

// Admin returns the admin user, or nil when none has been created yet.
func (s *Service) Admin(ctx context.Context) (*models.User, error) {
	user, err := s.users.First(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	return user, err
}

// User returns the user bound to a session.
func (s *Service) User(ctx context.Context, id int64) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// Authenticate checks username and password against the admin account.
//
// Blank fields yield [shared.ErrInvalidInput]. A missing admin, a different username, or a wrong
// password all yield [shared.ErrInvalidCredentials] so callers cannot tell them apart.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	username, err := models.ValidateCredentials(username, password)
	if err != nil {
		return nil, err
	}

	admin, err := s.Admin(ctx)
	if err != nil {
		return nil, err
	}

	if admin == nil || !admin.HasCredentials() || admin.Username != username || !admin.CheckPassword(password) {
		s.logger.Warn("login failed", "username", username)
		return nil, shared.ErrInvalidCredentials
	}

	s.logger.Info("login succeeded", "user", admin.ID)
	return admin, nil
}

// UpdateName validates and stores a new display name for the user.
func (s *Service) UpdateName(ctx context.Context, userID int64, name string) (*models.User, error) {
	name, err := models.ValidateName(name)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("settings updated", "user", user.ID)
	return user, nil
}

// ProvisionAdmin sets the admin's login name and password, creating the admin (named "Admin")
// when none exists. It reports whether a new user was created.
func (s *Service) ProvisionAdmin(ctx context.Context, username, password string) (bool, error) {
	username, err := models.ValidateCredentials(username, password)
	if err != nil {
		return false, err
	}

	admin, err := s.Admin(ctx)
	if err != nil {
		return false, err
	}

	created := admin == nil
	if created {
		admin = &models.User{Name: DefaultAdminName}
	}

	admin.Username = username
	if err := admin.SetPassword(password); err != nil {
		return false, err
	}

	if created {
		err = s.users.Create(ctx, admin)
	} else {
		err = s.users.Update(ctx, admin)
	}
	if err != nil {
		return false, fmt.Errorf("failed to save admin: %w", err)
	}

	s.logger.Info("admin provisioned", "user", admin.ID, "username", admin.Username, "created", created)
	return created, nil
}
