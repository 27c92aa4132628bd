package storage

import (
	"fmt"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

// FileValidationError describes why an uploaded file was rejected.
type FileValidationError struct {
	Details map[string]any
	Field   string // form field name
	Code    string // e.g. "file_too_large", "invalid_mime", "empty_file"
	Message string
}

func (e *FileValidationError) Error() string {
	return e.Message
}

// Error codes for FileValidationError.
const (
	ErrCodeFileTooLarge = "file_too_large"
	ErrCodeFileTooSmall = "file_too_small"
	ErrCodeInvalidMIME  = "invalid_mime"
	ErrCodeEmptyFile    = "empty_file"
)

// ValidationRule checks an uploaded file before it is stored.
type ValidationRule interface {
	// Validate checks f, whose MIME type was sniffed from its payload.
	Validate(f content.File, mimeType string) error
}

// RuleFunc adapts a function to ValidationRule.
type RuleFunc func(f content.File, mimeType string) error

func (fn RuleFunc) Validate(f content.File, mimeType string) error {
	return fn(f, mimeType)
}

// ValidateFile runs rules in order and returns the first failure.
// field is copied into FileValidationError.Field when non-empty.
func ValidateFile(field string, f content.File, mimeType string, rules ...ValidationRule) error {
	for _, rule := range rules {
		err := rule.Validate(f, mimeType)
		if err == nil {
			continue
		}
		if ve, ok := err.(*FileValidationError); ok && field != "" {
			ve.Field = field
		}
		return err
	}
	return nil
}

// MaxSize rejects files larger than n bytes.
func MaxSize(n int64) ValidationRule {
	return RuleFunc(func(f content.File, _ string) error {
		if f.Size() <= n {
			return nil
		}
		return &FileValidationError{
			Field:   "file",
			Code:    ErrCodeFileTooLarge,
			Message: fmt.Sprintf("file size %d exceeds limit of %d bytes", f.Size(), n),
			Details: map[string]any{"limit": n, "got": f.Size()},
		}
	})
}

// MinSize rejects files smaller than n bytes.
func MinSize(n int64) ValidationRule {
	return RuleFunc(func(f content.File, _ string) error {
		if f.Size() >= n {
			return nil
		}
		return &FileValidationError{
			Field:   "file",
			Code:    ErrCodeFileTooSmall,
			Message: fmt.Sprintf("file size %d is below minimum of %d bytes", f.Size(), n),
			Details: map[string]any{"minimum": n, "got": f.Size()},
		}
	})
}

// NotEmpty rejects empty payloads.
func NotEmpty() ValidationRule {
	return RuleFunc(func(f content.File, _ string) error {
		if f.Size() > 0 {
			return nil
		}
		return &FileValidationError{
			Field:   "file",
			Code:    ErrCodeEmptyFile,
			Message: "file is empty",
			Details: map[string]any{},
		}
	})
}

// AllowedTypes accepts only files whose sniffed type matches a pattern.
// Patterns support wildcards like "image/*".
func AllowedTypes(patterns ...string) ValidationRule {
	return RuleFunc(func(_ content.File, mimeType string) error {
		if matchesMIME(mimeType, patterns) {
			return nil
		}
		return &FileValidationError{
			Field:   "file",
			Code:    ErrCodeInvalidMIME,
			Message: fmt.Sprintf("file type %q is not allowed", mimeType),
			Details: map[string]any{"type": mimeType, "allowed": patterns},
		}
	})
}

// ImageOnly accepts image files.
func ImageOnly() ValidationRule {
	return AllowedTypes("image/*")
}

// DocumentsOnly accepts PDF, Word, Excel, plain text, CSV and RTF files.
func DocumentsOnly() ValidationRule {
	types := make([]string, 0, len(documentTypes))
	for t := range documentTypes {
		types = append(types, t)
	}
	return AllowedTypes(types...)
}
