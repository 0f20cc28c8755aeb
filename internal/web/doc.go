// Package web serves the watchlist as server rendered HTML.
//
// [App] is the application context: it holds the watchlist service, the session store, the login
// throttle and the parsed templates, and every handler is a method on it. [App.Routes] is the
// explicit route table; gated routes redirect to /login with a flash when the session is not
// authenticated.
//
// Handlers receive the request's [auth.Session] and return an error. Wrapped sentinel errors are
// mapped at one place:
//   - ErrNotFound renders the 404 page
//   - ErrUnauthorized flashes a login prompt and redirects to /login
//   - anything else is logged and answered with a plain 500
//
// Templates and the stylesheet are embedded; each page is parsed together with templates/base.html.
package web
