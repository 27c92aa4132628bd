package storage

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/reqdata/pkg/content"
)

// MIMEOctetStream is reported when the payload type cannot be detected.
const MIMEOctetStream = "application/octet-stream"

// mimeDetectionBytes is the prefix http.DetectContentType inspects.
const mimeDetectionBytes = 512

var mimeExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
	"image/x-icon":  ".ico",

	"application/pdf": ".pdf",
	"text/plain":      ".txt",
	"text/csv":        ".csv",
	"text/html":       ".html",
	"text/xml":        ".xml",
	"application/rtf": ".rtf",

	"application/json": ".json",
	"application/xml":  ".xml",

	"video/mp4":  ".mp4",
	"video/webm": ".webm",
	"audio/mpeg": ".mp3",
	"audio/wave": ".wav",
	"audio/ogg":  ".ogg",

	"application/zip":    ".zip",
	"application/x-gzip": ".gz",
}

var documentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"application/vnd.ms-excel": {},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {},
	"text/plain":      {},
	"text/csv":        {},
	"application/rtf": {},
}

// DetectMIME sniffs the media type of a payload from its leading bytes.
// The client-supplied File.Type is never consulted.
func DetectMIME(data []byte) string {
	if len(data) == 0 {
		return MIMEOctetStream
	}
	if len(data) > mimeDetectionBytes {
		data = data[:mimeDetectionBytes]
	}
	return normalizeMIME(http.DetectContentType(data))
}

// ExtFromMIME returns the preferred file extension for a MIME type.
// Returns an empty string if the type is unknown.
func ExtFromMIME(mimeType string) string {
	return mimeExtensions[normalizeMIME(mimeType)]
}

// IsImage reports whether the payload sniffs as an image.
func IsImage(f content.File) bool {
	return strings.HasPrefix(DetectMIME(f.Data), "image/")
}

// IsDocument reports whether the payload sniffs as a document type.
func IsDocument(f content.File) bool {
	_, ok := documentTypes[DetectMIME(f.Data)]
	return ok
}

// fileExt picks an extension for a stored file: from the detected MIME type,
// then from the client file name, then ".bin".
func fileExt(mimeType, name string) string {
	if ext := ExtFromMIME(mimeType); ext != "" {
		return ext
	}
	if ext := strings.ToLower(filepath.Ext(name)); len(ext) > 1 && len(ext) <= 8 {
		return sanitizePathSegment(ext)
	}
	return ".bin"
}

// normalizeMIME strips parameters such as charset and lowercases the type.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}

// matchesMIME checks a MIME type against patterns such as "image/png" or "image/*".
func matchesMIME(mimeType string, allowed []string) bool {
	mimeType = normalizeMIME(mimeType)

	for _, pattern := range allowed {
		pattern = normalizeMIME(pattern)
		if mimeType == pattern {
			return true
		}
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok && strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(mimeType, prefix) {
				return true
			}
		}
	}
	return false
}
