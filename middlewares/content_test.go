package middlewares_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqdata/internal"
	"github.com/dmitrymomot/reqdata/middlewares"
	"github.com/dmitrymomot/reqdata/pkg/content"
)

func echoName(c internal.Context) error {
	name, _ := c.InputText("name")
	return c.String(http.StatusOK, name)
}

func postBody(contentType, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	return req
}

func TestContent(t *testing.T) {
	t.Parallel()

	t.Run("valid json", func(t *testing.T) {
		t.Parallel()

		w := serve(postBody("application/json", `{"name":"Ann"}`),
			[]internal.Middleware{middlewares.Content()}, echoName)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Ann", w.Body.String())
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		t.Parallel()

		w := serve(postBody("application/json", `{"name":`),
			[]internal.Middleware{middlewares.RequestID(), middlewares.Content()}, echoName)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Equal(t, "malformed request body", w.Body.String())
		require.Equal(t, w.Header().Get("X-Request-ID"), w.Header().Get("X-Error-Request-ID"))
	})

	t.Run("oversized body is 413", func(t *testing.T) {
		t.Parallel()

		body := `{"name":"` + strings.Repeat("a", 128) + `"}`
		w := serve(postBody("application/json", body),
			[]internal.Middleware{middlewares.Content()}, echoName,
			internal.WithContentOptions(content.WithMaxBodySize(32)),
		)
		require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("unknown type passes without body values", func(t *testing.T) {
		t.Parallel()

		w := serve(postBody("text/csv", "name\nAnn"),
			[]internal.Middleware{middlewares.Content()}, echoName)
		require.Equal(t, http.StatusOK, w.Code)
		require.Empty(t, w.Body.String())
	})

	t.Run("allowed media types", func(t *testing.T) {
		t.Parallel()

		mw := []internal.Middleware{middlewares.Content(middlewares.WithAllowedMediaTypes("application/JSON"))}

		w := serve(postBody("text/csv", "name\nAnn"), mw, echoName)
		require.Equal(t, http.StatusUnsupportedMediaType, w.Code)

		w = serve(postBody("application/json; charset=utf-8", `{"name":"Bo"}`), mw, echoName)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Bo", w.Body.String())

		w = serve(httptest.NewRequest(http.MethodGet, "/?name=Cy", nil), mw, echoName)
		require.Equal(t, "Cy", w.Body.String())
	})

	t.Run("logs parsed content", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := serve(postBody("application/x-www-form-urlencoded", "name=Di"),
			[]internal.Middleware{middlewares.Content()}, echoName,
			internal.WithCustomLogger(bufferLogger(&buf)),
		)
		require.Equal(t, "Di", w.Body.String())
		require.Contains(t, buf.String(), `"msg":"request content parsed"`)
		require.Contains(t, buf.String(), `"form":1`)
	})
}
