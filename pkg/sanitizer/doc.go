// Package sanitizer strips or restricts HTML in user-supplied request values.
//
// StripHTML and SanitizeHTML work on plain strings using bluemonday policies.
// Text, HTML and Strings apply the same policies to content nodes, so a
// handler can read a cleaned value regardless of whether it arrived in the
// query string, a JSON body or a form field.
package sanitizer
