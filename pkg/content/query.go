package content

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// ParseQuery extracts the query parameters from a raw path and query string.
//
// Everything before the first '?' is ignored; later '?' characters belong to the
// query. Returns an empty map when there is no '?'.
//
//	ParseQuery("/path?a=1&b=two&c=") // {"a": "1", "b": "two", "c": ""}
func ParseQuery(raw string) map[string]string {
	_, query, found := strings.Cut(raw, "?")
	if !found {
		return map[string]string{}
	}
	return ParsePairs(query)
}

// ParsePairs parses "key=value" pairs separated by '&'.
//
// Both halves are percent-decoded; '+' is kept as a literal plus sign. A pair
// without '=', with an empty key, with an invalid escape or with escapes that
// do not decode to valid UTF-8 is skipped without affecting the others. A repeated key keeps its last value.
func ParsePairs(query string) map[string]string {
	data := make(map[string]string)
	for pair := range strings.SplitSeq(query, "&") {
		rawKey, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		key, ok := unescape(rawKey)
		if !ok || key == "" {
			continue
		}
		value, ok := unescape(rawValue)
		if !ok {
			continue
		}

		data[key] = value
	}
	return data
}

func unescape(s string) (string, bool) {
	out, err := url.PathUnescape(s)
	if err != nil || !utf8.ValidString(out) {
		return "", false
	}
	return out, true
}
