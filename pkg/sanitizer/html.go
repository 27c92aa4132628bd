package sanitizer

import "github.com/microcosm-cc/bluemonday"

// Policies are built once and only read afterwards; bluemonday allows
// concurrent Sanitize calls on a finished policy.
var (
	textPolicy = bluemonday.StrictPolicy()
	richPolicy = newRichPolicy()
)

// newRichPolicy allows the formatting a user-edited bio or comment needs.
func newRichPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements("p", "br", "strong", "b", "em", "i", "ul", "ol", "li", "code", "pre", "blockquote")
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
}

// StripHTML removes every tag and returns plain text.
func StripHTML(s string) string {
	return textPolicy.Sanitize(s)
}

// SanitizeHTML keeps safe formatting tags (p, a, strong, em, lists, code)
// and drops scripts, event handlers and javascript: URLs.
func SanitizeHTML(s string) string {
	return richPolicy.Sanitize(s)
}

// SanitizeHTMLCustom applies policy, or returns s unchanged when policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
