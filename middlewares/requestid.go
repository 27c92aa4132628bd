package middlewares

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/reqdata/internal"
	"github.com/dmitrymomot/reqdata/pkg/logger"
)

// requestIDKey is the context key for storing the request ID.
type requestIDKey struct{}

// DefaultRequestIDHeaders are the headers checked (in order) for an existing request ID.
var DefaultRequestIDHeaders = []string{"X-Request-ID", "X-Correlation-ID"}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	Generator      func() string      // ID generator function
	Extractor      internal.Extractor // Sources of an incoming ID
	ResponseHeader string             // Response header name
}

// RequestIDOption configures RequestIDConfig.
type RequestIDOption func(*RequestIDConfig)

// WithRequestIDHeaders replaces the sources with the given headers, checked in order.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Extractor = headerExtractor(headers)
	}
}

// WithRequestIDExtractor sets where an incoming request ID is read from.
//
// Example:
//
//	middlewares.RequestID(middlewares.WithRequestIDExtractor(internal.NewExtractor(
//	    internal.FromHeader("X-Request-ID"),
//	    internal.FromInput("request_id"),
//	)))
func WithRequestIDExtractor(ext internal.Extractor) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.Extractor = ext
	}
}

// WithRequestIDGenerator sets a custom ID generator function.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		if gen != nil {
			cfg.Generator = gen
		}
	}
}

// WithRequestIDResponseHeader sets the response header name.
// An empty name disables the response header.
func WithRequestIDResponseHeader(header string) RequestIDOption {
	return func(cfg *RequestIDConfig) {
		cfg.ResponseHeader = header
	}
}

func headerExtractor(headers []string) internal.Extractor {
	sources := make([]internal.ExtractorSource, 0, len(headers))
	for _, h := range headers {
		sources = append(sources, internal.FromHeader(h))
	}
	return internal.NewExtractor(sources...)
}

// RequestID returns middleware that assigns a request ID to each request.
// An incoming ID is reused so upstream tracing survives; otherwise a UUID is generated.
// The ID is stored in the context and echoed in the response header.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := &RequestIDConfig{
		Generator:      uuid.NewString,
		Extractor:      headerExtractor(DefaultRequestIDHeaders),
		ResponseHeader: "X-Request-ID",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			reqID, ok := cfg.Extractor.Extract(c)
			if !ok {
				reqID = cfg.Generator()
			}

			c.Set(requestIDKey{}, reqID)
			if cfg.ResponseHeader != "" {
				c.SetHeader(cfg.ResponseHeader, reqID)
			}

			return next(c)
		}
	}
}

// GetRequestID extracts the request ID from the context.
// Returns an empty string if no request ID is set.
func GetRequestID(c internal.Context) string {
	return internal.ContextValue[string](c, requestIDKey{})
}

// RequestIDExtractor returns a ContextExtractor for use with WithLogger.
// Adds "request_id" to all log entries.
func RequestIDExtractor() logger.ContextExtractor {
	return logger.FromContextValue(requestIDKey{}, "request_id")
}
