// package web implements the watchlist's HTML handlers, templates and route table
package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/watchlist/internal/auth"
	"github.com/desertthunder/watchlist/internal/models"
	"github.com/desertthunder/watchlist/internal/server"
	"github.com/desertthunder/watchlist/internal/shared"
	"github.com/desertthunder/watchlist/internal/watchlist"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// pages are rendered inside templates/base.html.
var pages = []string{"index", "edit", "login", "settings", "404"}

// Options holds the collaborators of an [App].
type Options struct {
	Service  *watchlist.Service
	Sessions *auth.Store
	Throttle *auth.Throttle
	Logger   *log.Logger
	// Ping reports storage health for /healthz. Optional.
	Ping func(ctx context.Context) error
}

// App is the application context shared by every handler.
type App struct {
	svc       *watchlist.Service
	sessions  *auth.Store
	throttle  *auth.Throttle
	logger    *log.Logger
	ping      func(ctx context.Context) error
	templates map[string]*template.Template
	router    *server.Router
}

// PageData is the view model passed to every template.
type PageData struct {
	Title         string
	Admin         *models.User
	Authenticated bool
	Flashes       []string
	Movies        []*models.Movie
	Movie         *models.Movie
	User          *models.User
}

// NewApp parses the embedded templates and assembles an [App].
func NewApp(opts Options) (*App, error) {
	if opts.Service == nil || opts.Sessions == nil {
		return nil, fmt.Errorf("%w: web app needs a service and a session store", shared.ErrMissingArgument)
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Throttle == nil {
		opts.Throttle = auth.NewThrottle(0, 0)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	app := &App{
		svc:       opts.Service,
		sessions:  opts.Sessions,
		throttle:  opts.Throttle,
		logger:    shared.WithLogger(opts.Logger, "component", "web"),
		ping:      opts.Ping,
		templates: templates,
	}
	app.router = app.newRouter()
	return app, nil
}

// Handler returns the router with middleware, routes, static files and the 404 page.
func (a *App) Handler() http.Handler {
	return a.router
}

func (a *App) newRouter() *server.Router {
	router := server.NewRouter()
	router.Use(server.Recover(a.logger), server.Logging(a.logger))
	router.Handle(a.Routes()...)

	static, _ := fs.Sub(staticFiles, "static")
	router.Static("/static/", static)
	router.NotFound(a.handle(a.NotFound, false))
	return router
}

var funcs = template.FuncMap{
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02")
	},
}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFiles, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		templates[page] = tmpl
	}
	return templates, nil
}
