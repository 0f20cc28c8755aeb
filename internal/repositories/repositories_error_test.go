package repositories

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/shared"
)

func TestMovieRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		tc := []struct {
			name  string
			title string
			year  string
		}{
			{name: "EmptyTitle", title: "", year: "2000"},
			{name: "LongTitle", title: strings.Repeat("x", models.MaxTitleLen+1), year: "2000"},
			{name: "ShortYear", title: "Leon", year: "94"},
			{name: "EmptyYear", title: "Leon", year: ""},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				repo := NewMovieRepository(setupTestDB(t))

				err := repo.Create(ctx, &models.Movie{Title: tt.title, Year: tt.year})
				if !errors.Is(err, shared.ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}

				count, err := repo.Count(ctx)
				if err != nil {
					t.Fatalf("failed to count movies: %v", err)
				}
				if count != 0 {
					t.Errorf("storage should be unchanged, got %d movies", count)
				}
			})
		}
	})

	t.Run("CreateMany", func(t *testing.T) {
		t.Run("OneInvalidStoresNothing", func(t *testing.T) {
			repo := NewMovieRepository(setupTestDB(t))

			err := repo.CreateMany(ctx, []*models.Movie{
				{Title: "Leon", Year: "1994"},
				{Title: "", Year: "1994"},
			})
			if err == nil {
				t.Fatal("expected validation error")
			}

			if count, _ := repo.Count(ctx); count != 0 {
				t.Errorf("expected no movies stored, got %d", count)
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewMovieRepository(setupTestDB(t))

			if _, err := repo.Get(ctx, 42); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewMovieRepository(setupTestDB(t))

			err := repo.Update(ctx, &models.Movie{ID: 42, Title: "Leon", Year: "1994"})
			if !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})

		t.Run("InvalidLeavesRowUnchanged", func(t *testing.T) {
			repo := NewMovieRepository(setupTestDB(t))
			movie := &models.Movie{Title: "Leon", Year: "1994"}
			if err := repo.Create(ctx, movie); err != nil {
				t.Fatalf("failed to create movie: %v", err)
			}

			err := repo.Update(ctx, &models.Movie{ID: movie.ID, Title: "Leon", Year: "94"})
			if !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}

			retrieved, _ := repo.Get(ctx, movie.ID)
			if retrieved.Year != "1994" {
				t.Errorf("expected year unchanged, got %s", retrieved.Year)
			}
		})
	})

	t.Run("Delete", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewMovieRepository(setupTestDB(t))

			if err := repo.Delete(ctx, 42); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("ClosedDatabase", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMovieRepository(db)
		db.Close()

		if _, err := repo.List(ctx); err == nil {
			t.Error("expected error listing from closed database")
		}
		if err := repo.Create(ctx, &models.Movie{Title: "Leon", Year: "1994"}); err == nil {
			t.Error("expected error creating in closed database")
		}
	})
}

func TestUserRepositoryErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("Create", func(t *testing.T) {
		t.Run("ValidationError", func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))

			if err := repo.Create(ctx, &models.User{Name: ""}); !errors.Is(err, shared.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})

		t.Run("DuplicateUsername", func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))

			if err := repo.Create(ctx, &models.User{Name: "One", Username: "admin"}); err != nil {
				t.Fatalf("failed to create first user: %v", err)
			}
			if err := repo.Create(ctx, &models.User{Name: "Two", Username: "admin"}); err == nil {
				t.Fatal("expected error when creating user with duplicate username")
			}
		})

		t.Run("EmptyUsernamesDoNotCollide", func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))

			if err := repo.Create(ctx, &models.User{Name: "One"}); err != nil {
				t.Fatalf("failed to create first user: %v", err)
			}
			if err := repo.Create(ctx, &models.User{Name: "Two"}); err != nil {
				t.Fatalf("empty usernames are stored as NULL and should not collide: %v", err)
			}
		})
	})

	t.Run("First", func(t *testing.T) {
		t.Run("NoUsers", func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))

			if _, err := repo.First(ctx); !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("NotFound", func(t *testing.T) {
			repo := NewUserRepository(setupTestDB(t))

			err := repo.Update(ctx, &models.User{ID: 7, Name: "Ghost"})
			if !errors.Is(err, shared.ErrNotFound) {
				t.Fatalf("expected ErrNotFound, got %v", err)
			}
		})
	})
}
