package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strconv"

	"github.com/desertthunder/watchlist/internal/auth"
	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/server"
	"github.com/desertthunder/watchlist/internal/shared"
)

// Flash messages.
const (
	msgInvalidInput       = "Invalid input."
	msgCreated            = "Item created."
	msgUpdated            = "Item updated."
	msgDeleted            = "Item deleted."
	msgLoginSuccess       = "Login success."
	msgInvalidCredentials = "Invalid username or password."
	msgGoodbye            = "Goodbye."
	msgSettingsUpdated    = "Settings updated."
	msgLoginRequired      = "Please log in to access this page."
	msgTooManyAttempts    = "Too many login attempts. Try again later."
)

const imgFragment = `<h1>Hello Totoro!</h1><img src="http://helloflask.com/totoro.gif">`

// Index lists every movie.
func (a *App) Index(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	movies, err := a.svc.ListMovies(r.Context())
	if err != nil {
		return err
	}
	return a.render(w, r, s, http.StatusOK, "index", &PageData{Title: "Watchlist", Movies: movies})
}

// CreateMovie adds a movie from the index form.
func (a *App) CreateMovie(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	_, err := a.svc.CreateMovie(r.Context(), r.FormValue("title"), r.FormValue("year"))
	if errors.Is(err, shared.ErrInvalidInput) {
		s.Flash(msgInvalidInput)
		return a.redirect(w, r, s, "index")
	}
	if err != nil {
		return err
	}

	s.Flash(msgCreated)
	return a.redirect(w, r, s, "index")
}

// EditMovie renders the edit form for one movie.
func (a *App) EditMovie(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	id, err := movieID(r)
	if err != nil {
		return err
	}

	movie, err := a.svc.GetMovie(r.Context(), id)
	if err != nil {
		return err
	}
	return a.render(w, r, s, http.StatusOK, "edit", &PageData{Title: "Edit item", Movie: movie})
}

// UpdateMovie applies the edit form. A missing movie is a 404 even when the form is invalid.
func (a *App) UpdateMovie(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	id, err := movieID(r)
	if err != nil {
		return err
	}

	if _, err := a.svc.GetMovie(r.Context(), id); err != nil {
		return err
	}

	_, err = a.svc.UpdateMovie(r.Context(), id, r.FormValue("title"), r.FormValue("year"))
	if errors.Is(err, shared.ErrInvalidInput) {
		s.Flash(msgInvalidInput)
		return a.redirect(w, r, s, "edit", "id", strconv.FormatInt(id, 10))
	}
	if err != nil {
		return err
	}

	s.Flash(msgUpdated)
	return a.redirect(w, r, s, "index")
}

// DeleteMovie removes one movie.
func (a *App) DeleteMovie(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	id, err := movieID(r)
	if err != nil {
		return err
	}

	if err := a.svc.DeleteMovie(r.Context(), id); err != nil {
		return err
	}

	s.Flash(msgDeleted)
	return a.redirect(w, r, s, "index")
}

// LoginPage renders the login form.
func (a *App) LoginPage(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	return a.render(w, r, s, http.StatusOK, "login", &PageData{Title: "Login"})
}

// Login checks the submitted credentials and binds the session to the admin.
func (a *App) Login(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	if !a.throttle.Allow() {
		a.logger.Warn("login throttled", "remote", r.RemoteAddr, "error", shared.ErrTooManyAttempts)
		s.Flash(msgTooManyAttempts)
		return a.render(w, r, s, http.StatusTooManyRequests, "login", &PageData{Title: "Login"})
	}

	user, err := a.svc.Authenticate(r.Context(), r.FormValue("username"), r.FormValue("password"))
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		s.Flash(msgInvalidInput)
		return a.redirect(w, r, s, "login")
	case errors.Is(err, shared.ErrInvalidCredentials):
		s.Flash(msgInvalidCredentials)
		return a.redirect(w, r, s, "login")
	case err != nil:
		return err
	}

	s.Login(user.ID)
	s.Flash(msgLoginSuccess)
	return a.redirect(w, r, s, "index")
}

// Logout ends the session.
func (a *App) Logout(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	s.Logout()
	s.Flash(msgGoodbye)
	return a.redirect(w, r, s, "index")
}

// SettingsPage renders the display name form for the logged in user.
func (a *App) SettingsPage(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	user, err := a.currentUser(r, s)
	if err != nil {
		return err
	}
	return a.render(w, r, s, http.StatusOK, "settings", &PageData{Title: "Settings", User: user})
}

// UpdateSettings stores a new display name.
func (a *App) UpdateSettings(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	user, err := a.currentUser(r, s)
	if err != nil {
		return err
	}

	_, err = a.svc.UpdateName(r.Context(), user.ID, r.FormValue("name"))
	if errors.Is(err, shared.ErrInvalidInput) {
		s.Flash(msgInvalidInput)
		return a.redirect(w, r, s, "settings")
	}
	if err != nil {
		return err
	}

	s.Flash(msgSettingsUpdated)
	return a.redirect(w, r, s, "index")
}

// UserPage echoes the escaped name from the path.
func (a *App) UserPage(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := io.WriteString(w, "User: "+template.HTMLEscapeString(server.Vars(r)["name"]))
	return err
}

// Img serves a fixed HTML fragment.
func (a *App) Img(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := io.WriteString(w, imgFragment)
	return err
}

// Healthz reports liveness, and storage reachability when a ping function is configured.
func (a *App) Healthz(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	status, code := "ok", http.StatusOK
	if a.ping != nil {
		if err := a.ping(r.Context()); err != nil {
			a.logger.Error("health check failed", "error", err)
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(map[string]string{"status": status})
}

// NotFound renders the 404 page.
func (a *App) NotFound(w http.ResponseWriter, r *http.Request, s *auth.Session) error {
	return a.render(w, r, s, http.StatusNotFound, "404", &PageData{Title: "Page Not Found"})
}

// currentUser loads the user bound to the session. A session pointing at a user that no longer
// exists is cleared and treated as logged out.
func (a *App) currentUser(r *http.Request, s *auth.Session) (*models.User, error) {
	id, _ := s.UserID()
	user, err := a.svc.User(r.Context(), id)
	if errors.Is(err, shared.ErrNotFound) {
		s.Logout()
		return nil, fmt.Errorf("%w: stale session for user %d", shared.ErrUnauthorized, id)
	}
	return user, err
}

func movieID(r *http.Request) (int64, error) {
	raw := server.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: movie %q", shared.ErrNotFound, raw)
	}
	return id, nil
}
