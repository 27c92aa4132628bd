package middlewares_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/reqdata/internal"
)

type routeHandler struct {
	h internal.HandlerFunc
}

func (rh routeHandler) Routes(r internal.Router) {
	r.GET("/*", rh.h)
	r.POST("/*", rh.h)
}

// serve runs req through an App with the given middleware and handler.
// Errors are rendered as "<code>:<message>" so tests can assert on them.
func serve(req *http.Request, mw []internal.Middleware, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	opts = append(opts,
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routeHandler{h: h}),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			if he := internal.AsHTTPError(err); he != nil {
				c.SetHeader("X-Error-Request-ID", he.RequestID)
				return c.String(he.Code, he.Message)
			}
			return c.String(http.StatusInternalServerError, err.Error())
		}),
	)

	w := httptest.NewRecorder()
	internal.New(opts...).ServeHTTP(w, req)
	return w
}

// bufferLogger returns a JSON logger writing into buf.
func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
