package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/desertthunder/watchlist/internal/auth"
	"github.com/desertthunder/watchlist/internal/shared"
)

// handlerFunc is a request handler that receives the loaded session and reports failures.
type handlerFunc func(w http.ResponseWriter, r *http.Request, s *auth.Session) error

// handle loads the session, applies the login gate when protected, and maps returned errors
// to responses.
func (a *App) handle(fn handlerFunc, protected bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, err := a.sessions.Load(r)
		if err != nil {
			a.logger.Debug("discarding session", "error", err)
		}

		err = nil
		if protected {
			err = a.authorize(r, s)
		}
		if err == nil {
			err = fn(w, r, s)
		}

		if err != nil {
			a.fail(w, r, s, err)
		}
	})
}

// authorize requires a session bound to a user that still exists.
func (a *App) authorize(r *http.Request, s *auth.Session) error {
	if !s.Authenticated() {
		return fmt.Errorf("%w: %s %s", shared.ErrUnauthorized, r.Method, r.URL.Path)
	}
	_, err := a.currentUser(r, s)
	return err
}

func (a *App) fail(w http.ResponseWriter, r *http.Request, s *auth.Session, err error) {
	switch {
	case errors.Is(err, shared.ErrUnauthorized):
		s.Flash(msgLoginRequired)
		if err := a.redirect(w, r, s, "login"); err != nil {
			a.serverError(w)
		}
	case errors.Is(err, shared.ErrNotFound):
		if err := a.NotFound(w, r, s); err != nil {
			a.serverError(w)
		}
	default:
		a.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		a.serverError(w)
	}
}

func (a *App) serverError(w http.ResponseWriter) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// render fills the shared parts of data, saves the session, and writes the page.
//
// The page is executed into a buffer first so a template error still produces a clean 500.
func (a *App) render(w http.ResponseWriter, r *http.Request, s *auth.Session, status int, page string, data *PageData) error {
	tmpl, ok := a.templates[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	admin, err := a.svc.Admin(r.Context())
	if err != nil {
		return err
	}
	data.Admin = admin
	data.Authenticated = s.Authenticated()
	data.Flashes = s.Flashes()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	if err := s.Save(r, w); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// redirect saves the session and sends a 303 to the named route so a POST is followed by a GET.
func (a *App) redirect(w http.ResponseWriter, r *http.Request, s *auth.Session, route string, pairs ...string) error {
	url, err := a.router.URL(route, pairs...)
	if err != nil {
		return err
	}
	if err := s.Save(r, w); err != nil {
		return err
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
	return nil
}
