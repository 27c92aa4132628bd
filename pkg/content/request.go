package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// FromRequest builds Content from an HTTP request.
//
// The query comes from the request URI. The body is decoded according to its
// Content-Type: JSON and YAML bodies become the JSON tree, multipart and
// url-encoded bodies become form fields. Other media types contribute nothing.
// JSON and YAML bodies are restored on r.Body after reading.
//
// Returns ErrBodyTooLarge if the body exceeds the configured limit and
// ErrMalformedBody if it cannot be decoded.
func FromRequest(r *http.Request, opts ...Option) (*Content, error) {
	o := buildOptions(opts...)
	query := ParseQuery(r.URL.RequestURI())

	if r.Body == nil || r.Body == http.NoBody {
		return New(query, nil, nil), nil
	}

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return New(query, nil, nil), nil
	}

	r.Body = http.MaxBytesReader(nil, r.Body, o.maxBodySize)

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		tree, err := readTree(r, ParseJSON)
		if err != nil {
			return nil, err
		}
		return New(query, tree, nil), nil

	case mediaType == "application/yaml" || mediaType == "application/x-yaml" || mediaType == "text/yaml":
		tree, err := readTree(r, ParseYAML)
		if err != nil {
			return nil, err
		}
		return New(query, tree, nil), nil

	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(o.maxMemory); err != nil {
			return nil, bodyError(err)
		}
		form, err := FromMultipartForm(r.MultipartForm)
		if err != nil {
			return nil, err
		}
		return New(query, nil, form), nil

	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
		return New(query, nil, FromValues(r.PostForm)), nil
	}

	return New(query, nil, nil), nil
}

// readTree reads the whole body, decodes it with parse and puts the bytes back
// on r.Body for later readers. An empty body yields a nil tree.
func readTree(r *http.Request, parse func([]byte) (JSONValue, error)) (any, error) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, bodyError(err)
	}
	r.Body = io.NopCloser(bytes.NewReader(data))

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	v, err := parse(data)
	if err != nil {
		return nil, err
	}
	return v.Value(), nil
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, maxErr.Limit)
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}
