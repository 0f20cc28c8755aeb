package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/shared"
	"github.com/jmoiron/sqlx"
)

// MovieRepository persists [models.Movie] rows in the movie table.
type MovieRepository struct {
	db *sqlx.DB
}

// NewMovieRepository creates a new [MovieRepository] with the given database connection
func NewMovieRepository(db *sqlx.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Create validates and inserts a movie, setting its ID and CreatedAt.
func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	return r.CreateMany(ctx, []*models.Movie{movie})
}

// CreateMany inserts all movies in one transaction. Nothing is stored if any movie is invalid.
func (r *MovieRepository) CreateMany(ctx context.Context, movies []*models.Movie) error {
	for _, m := range movies {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		for _, m := range movies {
			m.CreatedAt = time.Now().UTC()
			res, err := tx.ExecContext(ctx,
				"INSERT INTO movie (title, year, created_at) VALUES (?, ?, ?)",
				m.Title, m.Year, m.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to insert movie: %w", err)
			}
			if m.ID, err = res.LastInsertId(); err != nil {
				return fmt.Errorf("failed to read movie id: %w", err)
			}
		}
		return nil
	})
}

// Get retrieves a movie by ID, or [shared.ErrNotFound].
func (r *MovieRepository) Get(ctx context.Context, id int64) (*models.Movie, error) {
	var movie models.Movie
	err := r.db.GetContext(ctx, &movie, "SELECT id, title, year, created_at FROM movie WHERE id = ?", id)
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: movie %d", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie: %w", err)
	}
	return &movie, nil
}

// List returns every movie in insertion order.
func (r *MovieRepository) List(ctx context.Context) ([]*models.Movie, error) {
	movies := []*models.Movie{}
	if err := r.db.SelectContext(ctx, &movies, "SELECT id, title, year, created_at FROM movie ORDER BY id ASC"); err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	return movies, nil
}

// Count returns the number of stored movies.
func (r *MovieRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM movie"); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return n, nil
}

// Update overwrites the title and year of an existing movie.
func (r *MovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	if err := movie.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "UPDATE movie SET title = ?, year = ? WHERE id = ?", movie.Title, movie.Year, movie.ID)
		if err != nil {
			return fmt.Errorf("failed to update movie: %w", err)
		}
		return affected(res, fmt.Errorf("%w: movie %d", shared.ErrNotFound, movie.ID))
	})
}

// Delete removes a movie by ID.
func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM movie WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("failed to delete movie: %w", err)
		}
		return affected(res, fmt.Errorf("%w: movie %d", shared.ErrNotFound, id))
	})
}
