package sanitizer_test

import (
	"testing"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqdata/pkg/sanitizer"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"plain", "Ada Lovelace", "Ada Lovelace"},
		{"empty", "", ""},
		{"formatting", `<p>Hello <strong>world</strong></p>`, "Hello world"},
		{"script body dropped", `<p>Hello</p><script>alert('xss')</script>`, "Hello"},
		{"style body dropped", `Hello <STYLE>.x{color:red}</STYLE>World`, "Hello World"},
		{"javascript link keeps text", `<a href="javascript:alert('xss')">click</a>`, "click"},
		{"img with handler", `<img src="x" onerror="alert('xss')">`, ""},
		{"iframe", `<iframe src="https://evil.com"></iframe>content`, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.StripHTML(tt.in))
		})
	}
}

func TestSanitizeHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"keeps formatting", `<p>Hello <strong>world</strong></p>`, `<p>Hello <strong>world</strong></p>`},
		{"keeps lists", `<ul><li>a</li><li>b</li></ul>`, `<ul><li>a</li><li>b</li></ul>`},
		{"keeps code", `<pre><code>go run .</code></pre>`, `<pre><code>go run .</code></pre>`},
		{"keeps line breaks", `line1<br>line2`, `line1<br>line2`},
		{"links get nofollow", `<a href="https://example.com">link</a>`, `<a href="https://example.com" rel="nofollow">link</a>`},
		{"drops script", `<p>Hello</p><script>alert('xss')</script>`, `<p>Hello</p>`},
		{"drops javascript link", `<a href="javascript:alert('xss')">click</a>`, "click"},
		{"drops handlers", `<p onclick="alert('xss')">content</p>`, `<p>content</p>`},
		{"drops class and style", `<p class="x" style="color:red">content</p>`, `<p>content</p>`},
		{"unwraps div", `<div>content</div>`, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, sanitizer.SanitizeHTML(tt.in))
		})
	}
}

func TestSanitizeHTMLCustom(t *testing.T) {
	t.Parallel()

	t.Run("custom policy", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy()
		policy.AllowAttrs("src", "alt").OnElements("img")

		got := sanitizer.SanitizeHTMLCustom(`<img src="avatar.png" alt="me" onerror="alert(1)">`, policy)
		require.Equal(t, `<img src="avatar.png" alt="me">`, got)
	})

	t.Run("nil policy", func(t *testing.T) {
		t.Parallel()

		in := `<script>alert('xss')</script>`
		require.Equal(t, in, sanitizer.SanitizeHTMLCustom(in, nil))
	})
}
