// Package resolver turns a raw file selection into embeddable content.
// The validator only ever accepts resolver output (a base64 data URI),
// never a raw file handle.
package resolver

import (
	"encoding/base64"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload ceiling.
const MaxFileSize = 5 << 20 // 5 MB

var (
	ErrTooLarge        = errors.New("file exceeds the 5 MB limit")
	ErrUnsupportedType = errors.New("unsupported file type")
)

var allowedTypes = map[string]bool{
	"image/png":       true,
	"image/jpeg":      true,
	"image/gif":       true,
	"image/webp":      true,
	"image/svg+xml":   true,
	"application/pdf": true,
}

// extension fallback for types http.DetectContentType cannot sniff
var extTypes = map[string]string{
	".svg": "image/svg+xml",
}

// Resolve validates one uploaded file and encodes it as a data URI.
// On error the caller resets the owning field to empty, never leaving
// it partially populated.
func Resolve(filename string, content []byte) (string, error) {
	if len(content) > MaxFileSize {
		return "", ErrTooLarge
	}

	mime := http.DetectContentType(content)
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	if mime == "text/plain" || mime == "application/octet-stream" {
		if byExt, ok := extTypes[strings.ToLower(filepath.Ext(filename))]; ok {
			mime = byExt
		}
	}
	if !allowedTypes[mime] {
		return "", ErrUnsupportedType
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(content), nil
}
