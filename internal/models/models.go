// package models defines the data model for the watchlist web service
package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/desertthunder/watchlist/internal/shared"
	"golang.org/x/crypto/bcrypt"
)

// Field limits, counted in characters.
const (
	MaxTitleLen    = 60
	YearLen        = 4
	MaxNameLen     = 20
	MaxUsernameLen = 20
)

// PasswordCost is the bcrypt work factor used by [User.SetPassword].
var PasswordCost = bcrypt.DefaultCost

// Movie is a single watchlist entry.
type Movie struct {
	ID        int64     `db:"id"`
	Title     string    `db:"title"`
	Year      string    `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}

// Validate checks the movie's title and year and normalizes them in place.
func (m *Movie) Validate() error {
	title, year, err := ValidateMovie(m.Title, m.Year)
	if err != nil {
		return err
	}
	m.Title, m.Year = title, year
	return nil
}

// User is the single admin account.
//
// Username and PasswordHash are empty until the admin command provisions them.
type User struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}

// SetPassword stores a bcrypt hash of password. The cleartext is not kept.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	if u.PasswordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasCredentials reports whether the user can log in.
func (u *User) HasCredentials() bool {
	return u.Username != "" && u.PasswordHash != ""
}

// ValidateMovie trims title and year and returns them, or [shared.ErrInvalidInput] when
// the title is empty or longer than [MaxTitleLen], or the year is not exactly [YearLen] digits.
func ValidateMovie(title, year string) (string, string, error) {
	title, year = strings.TrimSpace(title), strings.TrimSpace(year)

	switch n := utf8.RuneCountInString(title); {
	case n == 0:
		return "", "", fmt.Errorf("%w: title is required", shared.ErrInvalidInput)
	case n > MaxTitleLen:
		return "", "", fmt.Errorf("%w: title exceeds %d characters", shared.ErrInvalidInput, MaxTitleLen)
	}

	if year == "" {
		return "", "", fmt.Errorf("%w: year is required", shared.ErrInvalidInput)
	}
	if len(year) != YearLen || strings.IndexFunc(year, notDigit) >= 0 {
		return "", "", fmt.Errorf("%w: year must be %d digits", shared.ErrInvalidInput, YearLen)
	}

	return title, year, nil
}

// ValidateName trims a display name and checks it is 1 to [MaxNameLen] characters.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return "", fmt.Errorf("%w: name is required", shared.ErrInvalidInput)
	case n > MaxNameLen:
		return "", fmt.Errorf("%w: name exceeds %d characters", shared.ErrInvalidInput, MaxNameLen)
	}
	return name, nil
}

// ValidateCredentials checks that neither field is blank and the username fits [MaxUsernameLen].
// The password is returned untouched; only the username is trimmed.
func ValidateCredentials(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", shared.ErrInvalidInput)
	}
	if utf8.RuneCountInString(username) > MaxUsernameLen {
		return "", fmt.Errorf("%w: username exceeds %d characters", shared.ErrInvalidInput, MaxUsernameLen)
	}
	return username, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}
