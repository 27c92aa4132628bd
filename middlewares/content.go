package middlewares

import (
	"mime"
	"net/http"
	"slices"
	"strings"

	"github.com/dmitrymomot/reqdata/internal"
)

// ContentConfig configures the content middleware.
type ContentConfig struct {
	// AllowedTypes lists the media types accepted for request bodies.
	// Empty accepts any type; unsupported types simply contribute no body values.
	AllowedTypes []string
}

// ContentOption configures ContentConfig.
type ContentOption func(*ContentConfig)

// WithAllowedMediaTypes restricts request bodies to the given media types.
// Requests with a body of another type fail with 415.
func WithAllowedMediaTypes(types ...string) ContentOption {
	return func(cfg *ContentConfig) {
		for _, t := range types {
			cfg.AllowedTypes = append(cfg.AllowedTypes, strings.ToLower(t))
		}
	}
}

// Content returns middleware that parses the request content before the handler runs.
// Parse failures stop the request: oversized bodies with 413, malformed ones with 400.
// Handlers behind it can use Input lookups without checking for parse errors.
func Content(opts ...ContentOption) internal.Middleware {
	cfg := &ContentConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			reqOpts := []internal.HTTPErrorOption{internal.WithRequestID(GetRequestID(c))}

			if len(cfg.AllowedTypes) > 0 && hasBody(c.Request()) {
				mt, _, err := mime.ParseMediaType(c.Header("Content-Type"))
				if err != nil || !slices.Contains(cfg.AllowedTypes, mt) {
					return internal.ErrUnsupportedMediaType("unsupported content type", reqOpts...)
				}
			}

			ct, err := c.Content()
			if err != nil {
				return internal.ContentError(err, reqOpts...)
			}

			_, hasJSON := ct.JSON()
			c.LogDebug("request content parsed",
				"query", len(ct.Query()),
				"form", len(ct.Form()),
				"json", hasJSON,
			)
			return next(c)
		}
	}
}

func hasBody(r *http.Request) bool {
	return r.Body != nil && r.Body != http.NoBody && r.ContentLength != 0
}
