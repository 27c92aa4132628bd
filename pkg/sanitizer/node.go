package sanitizer

import (
	"github.com/dmitrymomot/reqdata/pkg/content"
)

// Text returns the node's text with all HTML removed.
// Nodes without a text form (files, JSON containers, null) report false.
func Text(n content.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	s, ok := n.Text()
	if !ok {
		return "", false
	}
	return StripHTML(s), true
}

// HTML returns the node's text passed through the safe formatting policy.
func HTML(n content.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	s, ok := n.Text()
	if !ok {
		return "", false
	}
	return SanitizeHTML(s), true
}

// Strings looks up each key in c and returns the stripped text of the keys
// that resolve to a textual value. Missing keys are omitted.
func Strings(c *content.Content, keys ...string) map[string]string {
	out := make(map[string]string, len(keys))
	if c == nil {
		return out
	}
	for _, k := range keys {
		n, ok := c.Get(k)
		if !ok {
			continue
		}
		if s, ok := Text(n); ok {
			out[k] = s
		}
	}
	return out
}
