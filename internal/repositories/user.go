package repositories

import (
	"context"
	"fmt"

	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/shared"
	"github.com/jmoiron/sqlx"
)

const selectUser = `
	SELECT id, name, COALESCE(username, '') AS username, COALESCE(password_hash, '') AS password_hash
	FROM "user"
`

// UserRepository persists the admin [models.User].
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new [UserRepository] with the given database connection
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and sets its ID. An empty username is stored as NULL.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	name, err := models.ValidateName(user.Name)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	user.Name = name

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO "user" (name, username, password_hash) VALUES (?, ?, ?)`,
			user.Name, nullable(user.Username), nullable(user.PasswordHash))
		if err != nil {
			return fmt.Errorf("failed to insert user: %w", err)
		}
		if user.ID, err = res.LastInsertId(); err != nil {
			return fmt.Errorf("failed to read user id: %w", err)
		}
		return nil
	})
}

// First returns the user with the lowest ID, which is the admin.
func (r *UserRepository) First(ctx context.Context) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, selectUser+" ORDER BY id ASC LIMIT 1")
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: no admin user", shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Get retrieves a user by ID, or [shared.ErrNotFound].
func (r *UserRepository) Get(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, selectUser+" WHERE id = ?", id)
	if isNoRows(err) {
		return nil, fmt.Errorf("%w: user %d", shared.ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// Update writes the name, username and password hash of an existing user.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	name, err := models.ValidateName(user.Name)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	user.Name = name

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE "user" SET name = ?, username = ?, password_hash = ? WHERE id = ?`,
			user.Name, nullable(user.Username), nullable(user.PasswordHash), user.ID)
		if err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		return affected(res, fmt.Errorf("%w: user %d", shared.ErrNotFound, user.ID))
	})
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
