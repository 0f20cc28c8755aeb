package web

import (
	"net/http"

	"github.com/desertthunder/watchlist/internal/server"
)

// Routes returns the route table. Every state-changing route except login and logout requires a session.
func (a *App) Routes() []server.Route {
	const open, gated = false, true
	return []server.Route{
		{Name: "index", Method: http.MethodGet, Path: "/", Handler: a.handle(a.Index, open)},
		{Name: "home", Method: http.MethodGet, Path: "/home", Handler: a.handle(a.Index, open)},
		{Name: "create", Method: http.MethodPost, Path: "/", Handler: a.handle(a.CreateMovie, gated)},
		{Name: "login", Method: http.MethodGet, Path: "/login", Handler: a.handle(a.LoginPage, open)},
		{Name: "login.submit", Method: http.MethodPost, Path: "/login", Handler: a.handle(a.Login, open)},
		{Name: "logout", Method: http.MethodGet, Path: "/logout", Handler: a.handle(a.Logout, open)},
		{Name: "settings", Method: http.MethodGet, Path: "/settings", Handler: a.handle(a.SettingsPage, gated)},
		{Name: "settings.submit", Method: http.MethodPost, Path: "/settings", Handler: a.handle(a.UpdateSettings, gated)},
		{Name: "edit", Method: http.MethodGet, Path: "/movie/edit/{id:[0-9]+}", Handler: a.handle(a.EditMovie, gated)},
		{Name: "edit.submit", Method: http.MethodPost, Path: "/movie/edit/{id:[0-9]+}", Handler: a.handle(a.UpdateMovie, gated)},
		{Name: "delete", Method: http.MethodPost, Path: "/movie/delete/{id:[0-9]+}", Handler: a.handle(a.DeleteMovie, gated)},
		{Name: "user", Method: http.MethodGet, Path: "/user/{name}", Handler: a.handle(a.UserPage, open)},
		{Name: "img", Method: http.MethodGet, Path: "/img", Handler: a.handle(a.Img, open)},
		{Name: "healthz", Method: http.MethodGet, Path: "/healthz", Handler: a.handle(a.Healthz, open)},
	}
}
