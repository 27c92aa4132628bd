// Package middlewares provides HTTP middleware for reqdata applications.
//
// # Request ID
//
// RequestID assigns an ID to each request. An incoming X-Request-ID or
// X-Correlation-ID header is reused, otherwise a UUID is generated. Combine it
// with RequestIDExtractor so every log entry carries the ID:
//
//	app := reqdata.New(
//	    reqdata.WithLogger("api", middlewares.RequestIDExtractor()),
//	    reqdata.WithMiddleware(middlewares.RequestID()),
//	)
//
// # Recover
//
// Recover turns panics into *PanicError values for the app's error handler:
//
//	reqdata.WithErrorHandler(func(c reqdata.Context, err error) error {
//	    if pe, ok := middlewares.AsPanicError(err); ok {
//	        c.LogError("panic", "value", pe.Value)
//	    }
//	    return c.String(http.StatusInternalServerError, "internal error")
//	})
//
// # Content
//
// Content parses the request content before the handler runs and rejects
// bodies that cannot be read: 413 when the body exceeds the configured limit,
// 400 when it is malformed, and 415 for media types outside
// WithAllowedMediaTypes when that option is set.
//
//	reqdata.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.Recover(),
//	    middlewares.Content(middlewares.WithAllowedMediaTypes(
//	        "application/json", "multipart/form-data",
//	    )),
//	)
package middlewares
