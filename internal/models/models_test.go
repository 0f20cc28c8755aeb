package models

import (
	"errors"
	"strings"
	"testing"

	"github.com/desertthunder/watchlist/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

func TestValidateMovie(t *testing.T) {
	tc := []struct {
		name      string
		title     string
		year      string
		wantTitle string
		wantErr   bool
	}{
		{name: "valid", title: "WALL-E", year: "2008", wantTitle: "WALL-E"},
		{name: "trims whitespace", title: "  Leon  ", year: " 1994 ", wantTitle: "Leon"},
		{name: "single character title", title: "M", year: "1931", wantTitle: "M"},
		{name: "title at limit", title: strings.Repeat("a", MaxTitleLen), year: "2000", wantTitle: strings.Repeat("a", MaxTitleLen)},
		{name: "multibyte title at limit", title: strings.Repeat("é", MaxTitleLen), year: "2000", wantTitle: strings.Repeat("é", MaxTitleLen)},
		{name: "empty title", title: "", year: "2000", wantErr: true},
		{name: "blank title", title: "   ", year: "2000", wantErr: true},
		{name: "title too long", title: strings.Repeat("a", MaxTitleLen+1), year: "2000", wantErr: true},
		{name: "empty year", title: "Leon", year: "", wantErr: true},
		{name: "short year", title: "Leon", year: "994", wantErr: true},
		{name: "long year", title: "Leon", year: "19945", wantErr: true},
		{name: "non numeric year", title: "Leon", year: "19a4", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			title, _, err := ValidateMovie(tt.title, tt.year)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if title != tt.wantTitle {
				t.Errorf("ValidateMovie() title = %q, want %q", title, tt.wantTitle)
			}
		})
	}
}

func TestMovieValidate(t *testing.T) {
	m := &Movie{Title: " Mahjong ", Year: "1996"}
	if err := m.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Title != "Mahjong" {
		t.Errorf("expected trimmed title, got %q", m.Title)
	}

	bad := &Movie{Title: "Mahjong", Year: "96"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for two digit year")
	}
	if bad.Year != "96" {
		t.Error("failed validation should not modify the movie")
	}
}

func TestValidateName(t *testing.T) {
	tc := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "valid", input: "Grey Li", want: "Grey Li"},
		{name: "trims", input: "  Admin ", want: "Admin"},
		{name: "at limit", input: strings.Repeat("n", MaxNameLen), want: strings.Repeat("n", MaxNameLen)},
		{name: "empty", input: "", wantErr: true},
		{name: "too long", input: strings.Repeat("n", MaxNameLen+1), wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateName(tt.input)
			if tt.wantErr {
				if !errors.Is(err, shared.ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ValidateName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateCredentials(t *testing.T) {
	tc := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid", username: "admin", password: "hunter2"},
		{name: "blank username", username: " ", password: "hunter2", wantErr: true},
		{name: "blank password", username: "admin", password: "", wantErr: true},
		{name: "username too long", username: strings.Repeat("u", MaxUsernameLen+1), password: "x", wantErr: true},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateCredentials(tt.username, tt.password)
			if tt.wantErr != (err != nil) {
				t.Errorf("ValidateCredentials() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestUserPassword(t *testing.T) {
	PasswordCost = bcrypt.MinCost
	t.Cleanup(func() { PasswordCost = bcrypt.DefaultCost })

	u := &User{Name: "Admin", Username: "admin"}
	if u.HasCredentials() {
		t.Error("user without a hash should not have credentials")
	}
	if u.CheckPassword("") {
		t.Error("empty hash should never match")
	}

	if err := u.SetPassword("hunter2"); err != nil {
		t.Fatalf("failed to set password: %v", err)
	}

	if u.PasswordHash == "hunter2" || u.PasswordHash == "" {
		t.Error("password should be stored as a hash")
	}
	if !u.HasCredentials() {
		t.Error("expected credentials after SetPassword")
	}
	if !u.CheckPassword("hunter2") {
		t.Error("expected correct password to match")
	}
	if u.CheckPassword("hunter3") {
		t.Error("expected wrong password to be rejected")
	}
}
