package internal

import (
	"log/slog"

	"github.com/dmitrymomot/reqdata/pkg/content"
	"github.com/dmitrymomot/reqdata/pkg/logger"
	"github.com/dmitrymomot/reqdata/pkg/storage"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds global middleware to the application.
// Middleware is applied in the order provided.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers handlers that declare routes.
// Each handler's Routes method is called during setup.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithErrorHandler sets a custom error handler for handler errors.
//
// Example:
//
//	reqdata.WithErrorHandler(func(c reqdata.Context, err error) error {
//	    if he := reqdata.AsHTTPError(err); he != nil {
//	        return c.JSON(he.Code, map[string]string{"error": he.Message})
//	    }
//	    return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal"})
//	})
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithLogger creates a logger with a component name and optional extractors.
//
// Example:
//
//	reqdata.New(
//	    reqdata.WithLogger("api", middlewares.RequestIDExtractor()),
//	)
func WithLogger(component string, extractors ...logger.ContextExtractor) Option {
	return func(a *App) {
		a.logger = logger.New(extractors...).With("component", component)
	}
}

// WithCustomLogger sets a fully custom logger. A nil logger is ignored.
func WithCustomLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithStorage configures the backend used by Context.UploadInput and Context.FileURL.
//
// Example:
//
//	s3, err := storage.New(storage.Config{Bucket: "uploads", AccessKey: key, SecretKey: secret})
//	if err != nil {
//	    return err
//	}
//	reqdata.New(reqdata.WithStorage(s3))
func WithStorage(s storage.Storage) Option {
	return func(a *App) {
		a.storage = s
	}
}

// WithContentOptions sets the limits used when request content is parsed.
//
// Example:
//
//	reqdata.WithContentOptions(cfg.Content.Options()...)
func WithContentOptions(opts ...content.Option) Option {
	return func(a *App) {
		a.contentOpts = append(a.contentOpts, opts...)
	}
}
