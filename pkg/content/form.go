package content

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
)

// FromValues converts url-encoded form values into input fields.
// When a field repeats, the last value wins.
func FromValues(values url.Values) map[string]MultiPart {
	fields := make(map[string]MultiPart, len(values))
	for name, vs := range values {
		if len(vs) == 0 {
			continue
		}
		fields[name] = Input(vs[len(vs)-1])
	}
	return fields
}

// FromMultipartForm converts a parsed multipart form into fields, reading every
// uploaded file into memory. A field with one file becomes SingleFile, a field
// with several becomes MultipleFiles. File fields replace text fields of the same name.
func FromMultipartForm(form *multipart.Form) (map[string]MultiPart, error) {
	if form == nil {
		return nil, nil
	}

	fields := FromValues(form.Value)
	for name, headers := range form.File {
		files := make([]File, 0, len(headers))
		for _, fh := range headers {
			f, err := readFileHeader(fh)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %v", ErrReadFile, name, err)
			}
			files = append(files, f)
		}

		switch len(files) {
		case 0:
		case 1:
			fields[name] = SingleFile(files[0])
		default:
			fields[name] = MultipleFiles(files)
		}
	}
	return fields, nil
}

func readFileHeader(fh *multipart.FileHeader) (File, error) {
	src, err := fh.Open()
	if err != nil {
		return File{}, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return File{}, err
	}

	return File{
		Name: fh.Filename,
		Type: fh.Header.Get("Content-Type"),
		Data: data,
	}, nil
}
