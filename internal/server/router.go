package server

import (
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

// Route maps one method and path to a handler.
//
// Path uses gorilla/mux syntax, e.g. "/movie/edit/{id:[0-9]+}".
type Route struct {
	Name    string
	Method  string
	Path    string
	Handler http.Handler
}

// Router is a table driven router built on [mux.Router].
//
// Middleware registered with [Router.Use] wraps every handler registered after it, including the
// not found handler.
type Router struct {
	mux         *mux.Router
	middlewares []Middleware
}

// NewRouter creates a new [Router] instance.
func NewRouter() *Router {
	return &Router{
		mux:         mux.NewRouter(),
		middlewares: []Middleware{},
	}
}

// Use adds [Middleware] to the [Router] instance's middleware stack, applied in the order it's added.
func (r *Router) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers every route in the table.
func (r *Router) Handle(routes ...Route) {
	for _, route := range routes {
		rt := r.mux.Handle(route.Path, r.Apply(route.Handler)).Methods(route.Method)
		if route.Name != "" {
			rt.Name(route.Name)
		}
	}
}

// NotFound sets the handler used for unmatched paths.
func (r *Router) NotFound(handler http.Handler) {
	r.mux.NotFoundHandler = r.Apply(handler)
}

// Static serves files from fsys under prefix.
func (r *Router) Static(prefix string, fsys fs.FS) {
	files := http.StripPrefix(prefix, http.FileServer(http.FS(fsys)))
	r.mux.PathPrefix(prefix).Methods(http.MethodGet, http.MethodHead).Handler(r.Apply(files))
}

// URL builds the path of a named route from key/value pairs.
func (r *Router) URL(name string, pairs ...string) (string, error) {
	route := r.mux.Get(name)
	if route == nil {
		return "", fmt.Errorf("no route named %q", name)
	}
	u, err := route.URL(pairs...)
	if err != nil {
		return "", err
	}
	return u.Path, nil
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Apply wraps a handler with all registered middleware.
//
// Middleware is applied in reverse order (last added wraps first).
func (r *Router) Apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}

// Vars returns the path variables of the current request.
func Vars(req *http.Request) map[string]string {
	return mux.Vars(req)
}
