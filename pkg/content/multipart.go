package content

import "bytes"

// Kind identifies which variant a MultiPart holds.
type Kind uint8

const (
	// KindInput is a plain text form field.
	KindInput Kind = iota + 1
	// KindFile is a single uploaded file.
	KindFile
	// KindFiles is several files uploaded under one field name.
	KindFiles
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindFile:
		return "file"
	case KindFiles:
		return "files"
	}
	return "unknown"
}

// File is an uploaded file payload that has already been read into memory.
type File struct {
	// Name is the client-supplied file name. Empty if not sent.
	Name string
	// Type is the client-supplied media type, stored without interpretation. Empty if not sent.
	Type string
	// Data is the payload. Values returned by MultiPart and Content share
	// this buffer and must be treated as read-only.
	Data []byte
}

// Size returns the payload length in bytes.
func (f File) Size() int64 { return int64(len(f.Data)) }

func (f File) clone() File {
	f.Data = bytes.Clone(f.Data)
	return f
}

// MultiPart is one decoded form field: a text input, a single file or
// multiple files sharing the field name.
//
// Only inputs answer scalar coercions; file variants report every coercion as absent.
type MultiPart struct {
	input string
	files []File
	kind  Kind
}

// Input returns a text form field.
func Input(text string) MultiPart {
	return MultiPart{kind: KindInput, input: text}
}

// SingleFile returns a field holding one uploaded file.
// The payload is copied, so later changes to f.Data do not reach the field.
func SingleFile(f File) MultiPart {
	return MultiPart{kind: KindFile, files: []File{f.clone()}}
}

// MultipleFiles returns a field holding several uploaded files.
// The payloads are copied.
func MultipleFiles(files []File) MultiPart {
	owned := make([]File, len(files))
	for i, f := range files {
		owned[i] = f.clone()
	}
	return MultiPart{kind: KindFiles, files: owned}
}

// Kind returns the variant held by m.
func (m MultiPart) Kind() Kind { return m.kind }

// Input returns the field text if m is an input.
func (m MultiPart) Input() (string, bool) {
	if m.kind != KindInput {
		return "", false
	}
	return m.input, true
}

// File returns the payload if m holds exactly one file.
func (m MultiPart) File() (File, bool) {
	if m.kind != KindFile {
		return File{}, false
	}
	return m.files[0], true
}

// Files returns the payloads if m holds multiple files.
func (m MultiPart) Files() ([]File, bool) {
	if m.kind != KindFiles {
		return nil, false
	}
	return append([]File(nil), m.files...), true
}

func (m MultiPart) text() (Text, bool) {
	if m.kind != KindInput {
		return "", false
	}
	return Text(m.input), true
}

func (m MultiPart) IsNull() bool {
	t, ok := m.text()
	return ok && t.IsNull()
}

func (m MultiPart) Bool() (bool, bool) {
	t, ok := m.text()
	if !ok {
		return false, false
	}
	return t.Bool()
}

func (m MultiPart) Int() (int, bool) {
	t, ok := m.text()
	if !ok {
		return 0, false
	}
	return t.Int()
}

func (m MultiPart) Uint() (uint, bool) {
	t, ok := m.text()
	if !ok {
		return 0, false
	}
	return t.Uint()
}

func (m MultiPart) Float() (float32, bool) {
	t, ok := m.text()
	if !ok {
		return 0, false
	}
	return t.Float()
}

func (m MultiPart) Double() (float64, bool) {
	t, ok := m.text()
	if !ok {
		return 0, false
	}
	return t.Double()
}

func (m MultiPart) Text() (string, bool) {
	t, ok := m.text()
	return string(t), ok
}

// Array wraps an input as a single element. The text is not split.
func (m MultiPart) Array() ([]Node, bool) {
	if m.kind != KindInput {
		return nil, false
	}
	return []Node{m}, true
}

func (m MultiPart) Object() (map[string]Node, bool) { return nil, false }

func (m MultiPart) JSON() (JSONValue, bool) {
	t, ok := m.text()
	if !ok {
		return JSONValue{}, false
	}
	return t.JSON()
}

func (MultiPart) node() {}
