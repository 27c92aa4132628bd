package content

import "errors"

// Sentinel errors returned while decoding a request body.
// Lookups and coercions never return errors.
var (
	ErrMalformedBody = errors.New("content: malformed request body")
	ErrBodyTooLarge  = errors.New("content: request body too large")
	ErrReadFile      = errors.New("content: failed to read uploaded file")
)
