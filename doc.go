// Package reqdata is a small HTTP toolkit built around one uniform view of
// request data.
//
// A request can carry values in three places: the URL query string, a
// structured body (JSON, or YAML decoded into the same shape) and form fields,
// including uploaded files. reqdata merges them behind a single lookup, in that
// order of precedence, and leaves every value uncoerced until the handler asks
// for a type:
//
//	func (h *Handler) create(c reqdata.Context) error {
//	    name, ok := c.InputText("name")       // HTML stripped
//	    if !ok {
//	        return reqdata.ErrBadRequest("name is required")
//	    }
//	    age := reqdata.Input[int](c, "age")   // "42", 42 or 42.9 all give 42
//	    notify := reqdata.InputDefault(c, "notify", true)
//	    ...
//	}
//
// # Application
//
//	app := reqdata.New(
//	    reqdata.WithLogger("api", middlewares.RequestIDExtractor()),
//	    reqdata.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.Recover(),
//	        middlewares.Content(),
//	    ),
//	    reqdata.WithStorage(store),
//	    reqdata.WithHandlers(handlers.NewProfiles(repo)),
//	)
//
//	if err := app.Run(":8080", reqdata.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Values
//
// Every lookup returns a [Node]. Nodes coerce on demand to bool, int, uint,
// float32, float64 and string, and expose arrays, objects and the raw JSON
// subtree where the source has them. A missing key or a value that does not fit
// the requested type is reported as absence, never as an error.
//
// Files uploaded in a multipart form are available through Context.InputFile,
// Context.InputFiles and Context.UploadInput, which stores them with the
// configured pkg/storage backend.
//
// # Packages
//
//   - pkg/content: the request data model, coercion rules and parsers
//   - pkg/storage: S3 and in-memory storage for uploaded files
//   - pkg/sanitizer: HTML stripping for request values
//   - pkg/logger: slog setup with context extractors and Sentry
//   - middlewares: request ID, panic recovery and up-front content parsing
package reqdata
