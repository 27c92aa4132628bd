package reqdata

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/reqdata/internal"
	"github.com/dmitrymomot/reqdata/pkg/content"
	"github.com/dmitrymomot/reqdata/pkg/logger"
	"github.com/dmitrymomot/reqdata/pkg/storage"
)

// Type aliases - public API
type (
	// App owns the router, handler configuration and server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and typed request content.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HTTPError is an error carrying an HTTP status.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// Extractor tries several request sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads one string value from the request.
	ExtractorSource = internal.ExtractorSource

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// Node is a lazily coerced request value.
	Node = content.Node

	// MultiPart is a form field: text, one file or several files.
	MultiPart = content.MultiPart

	// File is an uploaded file held in memory.
	File = content.File

	// Content is the combined query, body and form view of a request.
	Content = content.Content

	// Scalar lists the types Input, InputAt and Param convert to.
	Scalar = content.Scalar
)

// New creates a new application with the given options.
//
// Example:
//
//	app := reqdata.New(
//	    reqdata.WithLogger("api", middlewares.RequestIDExtractor()),
//	    reqdata.WithMiddleware(middlewares.RequestID(), middlewares.Recover(), middlewares.Content()),
//	    reqdata.WithHandlers(handlers.NewUploads()),
//	)
//
//	err := app.Run(":8080", reqdata.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options

// WithMiddleware adds global middleware to the application.
func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

// WithHandlers registers handlers that declare routes.
func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

// WithErrorHandler sets a custom error handler for handler errors.
func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

// WithNotFoundHandler sets a custom 404 handler.
func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

// WithMethodNotAllowedHandler sets a custom 405 handler.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

// WithLogger creates a logger with a component name and optional extractors.
func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

// WithCustomLogger sets a fully custom logger.
func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

// WithStorage configures the backend used for uploads.
func WithStorage(s storage.Storage) Option {
	return internal.WithStorage(s)
}

// WithContentOptions sets limits for request content parsing.
func WithContentOptions(opts ...content.Option) Option {
	return internal.WithContentOptions(opts...)
}

// Run options

// Address sets the HTTP server address used when Run receives an empty one.
func Address(addr string) RunOption {
	return internal.Address(addr)
}

// Logger sets the runtime logger.
func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

// ShutdownTimeout sets the timeout for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

// StartupHook registers a function that must succeed before serving.
func StartupHook(fn func(context.Context) error) RunOption {
	return internal.StartupHook(fn)
}

// ShutdownHook registers a cleanup function run after the server stops.
func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

// WithContext sets the base context; cancelling it stops the server.
func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

// Typed request values

// Input converts the request input under key to T, or returns T's zero value.
func Input[T Scalar](c Context, key string) T {
	return internal.Input[T](c, key)
}

// InputDefault converts the request input under key to T, or returns defaultValue.
func InputDefault[T Scalar](c Context, key string, defaultValue T) T {
	return internal.InputDefault(c, key, defaultValue)
}

// InputAt converts the positional request input i to T.
func InputAt[T Scalar](c Context, i int) T {
	return internal.InputAt[T](c, i)
}

// Param converts a URL parameter to T.
func Param[T Scalar](c Context, name string) T {
	return internal.Param[T](c, name)
}

// ContextValue returns the value stored under key as T.
func ContextValue[T any](c Context, key any) T {
	return internal.ContextValue[T](c, key)
}

// As converts a node to T.
func As[T Scalar](n Node) (T, bool) {
	return content.As[T](n)
}

// Extractors

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

var (
	FromHeader      = internal.FromHeader
	FromQuery       = internal.FromQuery
	FromParam       = internal.FromParam
	FromInput       = internal.FromInput
	FromBearerToken = internal.FromBearerToken
)

// Errors

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

var (
	ErrBadRequest           = internal.ErrBadRequest
	ErrNotFound             = internal.ErrNotFound
	ErrPayloadTooLarge      = internal.ErrPayloadTooLarge
	ErrUnsupportedMediaType = internal.ErrUnsupportedMediaType
	ErrUnprocessable        = internal.ErrUnprocessable
	ErrInternal             = internal.ErrInternal

	WithDetail    = internal.WithDetail
	WithErrorCode = internal.WithErrorCode
	WithRequestID = internal.WithRequestID
	WithError     = internal.WithError

	ContentError = internal.ContentError
	IsHTTPError  = internal.IsHTTPError
	AsHTTPError  = internal.AsHTTPError
)
