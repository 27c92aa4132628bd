// Package internal provides the core types and implementation for reqdata.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/reqdata" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: owns the chi router, handler configuration and server lifecycle
//   - Context: request/response access plus typed access to request content
//   - Router: interface handlers use to declare routes
//   - Handler, HandlerFunc, Middleware, ErrorHandler
//   - HTTPError: structured error carrying an HTTP status
//   - Extractor: ordered first-hit lookup of a string from the request
//
// # Request Content
//
// Context.Content parses the request once and caches the result on the
// request context. Lookups go query string first, then the JSON (or YAML)
// body, then form fields, and the first hit wins:
//
//	func (h *Handler) search(c internal.Context) error {
//	    limit := internal.InputDefault(c, "limit", 20)
//	    tags, _ := c.Input("tags")
//	    items, _ := tags.Array()
//	    return c.JSON(http.StatusOK, h.repo.Search(c, items, limit))
//	}
//
// A malformed or oversized body makes every Input lookup report absence.
// Call Content directly, or install the content middleware, to turn the
// parse error into a 400 or 413 response.
//
// # Uploads
//
// With WithStorage configured, UploadInput stores the file(s) of a form field:
//
//	infos, err := c.UploadInput("avatar",
//	    storage.WithPrefix("avatars"),
//	    storage.WithValidation(storage.ImageOnly(), storage.MaxSize(5<<20)),
//	)
//
// # Server Runtime
//
// Run listens, runs startup hooks, serves until SIGINT/SIGTERM or the base
// context ends, then shuts the server down and runs shutdown hooks
// concurrently within the shutdown timeout:
//
//	err := app.Run(":8080", internal.Logger(log), internal.ShutdownHook(closeDB))
package internal
