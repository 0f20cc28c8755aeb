// Package server provides HTTP routing, middleware, and the server lifecycle for the web interface.
//
// # Router
//
// [Router] wraps a gorilla/mux router and registers a table of [Route] values. Every route
// handler, the static file handler, and the not found handler are wrapped with the router's
// [Middleware] stack in reverse order (last added executes first).
//
// # Middleware
//
//   - [Logging] : per-request id (X-Request-ID) and an access log line
//   - [Recover] : converts handler panics into a 500
//
// # Lifecycle
//
// [Server.Run] serves until its context is cancelled and then calls [http.Server.Shutdown],
// giving in-flight requests up to the configured shutdown timeout to finish.
package server
