package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/reqdata/pkg/content"
	"github.com/dmitrymomot/reqdata/pkg/sanitizer"
	"github.com/dmitrymomot/reqdata/pkg/storage"
)

// Context provides request/response access and typed access to request content.
// It also implements context.Context by delegating to the underlying request context.
type Context interface {
	context.Context

	// Request returns the underlying *http.Request.
	Request() *http.Request

	// Response returns the underlying http.ResponseWriter.
	Response() http.ResponseWriter

	// Context returns the request's context.Context.
	Context() context.Context

	// Param returns the URL parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Param(name string) string

	// Query returns the decoded query parameter value by name.
	// Returns empty string if the parameter doesn't exist.
	Query(name string) string

	// Header returns the request header value by name.
	Header(name string) string

	// SetHeader sets a response header.
	SetHeader(name, value string)

	// Content returns the request content: query parameters, the structured
	// body and form fields. It is parsed on first call and cached for the
	// rest of the request.
	Content() (*content.Content, error)

	// Input looks key up in the query, then the JSON body, then the form.
	// Parse failures are reported as absence; call Content to see the error.
	Input(key string) (content.Node, bool)

	// InputAt looks up a positional value the same way Input does.
	InputAt(i int) (content.Node, bool)

	// InputFile returns the uploaded file stored under key.
	// A field with several files yields the first one.
	InputFile(key string) (content.File, bool)

	// InputFiles returns every file uploaded under key.
	InputFiles(key string) ([]content.File, bool)

	// InputText returns the textual value under key with all HTML removed.
	InputText(key string) (string, bool)

	// UploadInput stores the file(s) uploaded under key in the configured storage.
	// Returns storage.ErrNotConfigured without storage and storage.ErrNotAFile
	// when key does not hold a file.
	UploadInput(key string, opts ...storage.Option) ([]*storage.FileInfo, error)

	// FileURL returns an access URL for a stored object.
	FileURL(key string, opts ...storage.URLOption) (string, error)

	// JSON writes a JSON response with the given status code.
	JSON(code int, v any) error

	// String writes a plain text response with the given status code.
	String(code int, s string) error

	// NoContent writes a response with no body.
	NoContent(code int) error

	// Error creates and returns an HTTPError without writing a response.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written returns true if a response has already been written.
	Written() bool

	// Logger returns the logger for advanced usage.
	Logger() *slog.Logger

	// LogDebug logs a debug message with optional attributes.
	LogDebug(msg string, attrs ...any)

	// LogInfo logs an info message with optional attributes.
	LogInfo(msg string, attrs ...any)

	// LogWarn logs a warning message with optional attributes.
	LogWarn(msg string, attrs ...any)

	// LogError logs an error message with optional attributes.
	LogError(msg string, attrs ...any)

	// Set stores a value in the request context.
	Set(key any, value any)

	// Get retrieves a value from the request context.
	// Returns nil if the key is not found.
	Get(key any) any
}

type contentKey struct{}

// parsedContent is the cached outcome of parsing the request content.
type parsedContent struct {
	content *content.Content
	err     error
}

type requestContext struct {
	response       http.ResponseWriter
	request        *http.Request
	responseWriter *ResponseWriter
	logger         *slog.Logger
	storage        storage.Storage
	contentOpts    []content.Option
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	rw, ok := w.(*ResponseWriter)
	if !ok {
		rw = NewResponseWriter(w)
	}

	return &requestContext{
		request:        r,
		response:       rw,
		responseWriter: rw,
		logger:         app.logger,
		storage:        app.storage,
		contentOpts:    app.contentOpts,
	}
}

func (c *requestContext) Request() *http.Request {
	return c.request
}

func (c *requestContext) Response() http.ResponseWriter {
	return c.response
}

func (c *requestContext) Context() context.Context {
	return c.request.Context()
}

func (c *requestContext) Deadline() (time.Time, bool) {
	return c.request.Context().Deadline()
}

func (c *requestContext) Done() <-chan struct{} {
	return c.request.Context().Done()
}

func (c *requestContext) Err() error {
	return c.request.Context().Err()
}

func (c *requestContext) Value(key any) any {
	return c.request.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return content.ParseQuery(c.request.URL.RequestURI())[name]
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

func (c *requestContext) Content() (*content.Content, error) {
	if p, ok := c.Get(contentKey{}).(*parsedContent); ok {
		return p.content, p.err
	}

	ct, err := content.FromRequest(c.request, c.contentOpts...)
	if err != nil {
		c.logger.DebugContext(c.Context(), "request content rejected", slog.Any("error", err))
	}
	c.Set(contentKey{}, &parsedContent{content: ct, err: err})
	return ct, err
}

func (c *requestContext) Input(key string) (content.Node, bool) {
	ct, err := c.Content()
	if err != nil {
		return nil, false
	}
	return ct.Get(key)
}

func (c *requestContext) InputAt(i int) (content.Node, bool) {
	ct, err := c.Content()
	if err != nil {
		return nil, false
	}
	return ct.Index(i)
}

func (c *requestContext) InputFile(key string) (content.File, bool) {
	files, ok := c.InputFiles(key)
	if !ok || len(files) == 0 {
		return content.File{}, false
	}
	return files[0], true
}

func (c *requestContext) InputFiles(key string) ([]content.File, bool) {
	n, ok := c.Input(key)
	if !ok {
		return nil, false
	}
	mp, ok := n.(content.MultiPart)
	if !ok {
		return nil, false
	}
	switch mp.Kind() {
	case content.KindFile:
		f, _ := mp.File()
		return []content.File{f}, true
	case content.KindFiles:
		return mp.Files()
	}
	return nil, false
}

func (c *requestContext) InputText(key string) (string, bool) {
	n, ok := c.Input(key)
	if !ok {
		return "", false
	}
	return sanitizer.Text(n)
}

func (c *requestContext) UploadInput(key string, opts ...storage.Option) ([]*storage.FileInfo, error) {
	if c.storage == nil {
		return nil, storage.ErrNotConfigured
	}
	n, ok := c.Input(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrNotAFile, key)
	}

	opts = append([]storage.Option{storage.WithField(key)}, opts...)
	infos, err := storage.PutNode(c.Context(), c.storage, n, opts...)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		c.logger.InfoContext(c.Context(), "file stored",
			slog.String("field", key),
			slog.String("key", info.Key),
			slog.Int64("size", info.Size),
		)
	}
	return infos, nil
}

func (c *requestContext) FileURL(key string, opts ...storage.URLOption) (string, error) {
	if c.storage == nil {
		return "", storage.ErrNotConfigured
	}
	return c.storage.URL(c.Context(), key, opts...)
}

func (c *requestContext) JSON(code int, v any) error {
	c.response.Header().Set("Content-Type", "application/json; charset=utf-8")
	c.response.WriteHeader(code)
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) String(code int, s string) error {
	c.response.Header().Set("Content-Type", "text/plain; charset=utf-8")
	c.response.WriteHeader(code)
	_, err := c.response.Write([]byte(s))
	return err
}

func (c *requestContext) NoContent(code int) error {
	c.response.WriteHeader(code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	return newHTTPError(code, message, opts)
}

func (c *requestContext) Written() bool {
	return c.responseWriter.Written()
}

func (c *requestContext) Logger() *slog.Logger {
	return c.logger
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogWarn(msg string, attrs ...any) {
	c.logger.WarnContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.request.Context(), msg, attrs...)
}

func (c *requestContext) Set(key, value any) {
	ctx := context.WithValue(c.request.Context(), key, value)
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Get(key any) any {
	return c.request.Context().Value(key)
}
