// Package media converts user-selected files into inline-encoded
// strings (base64 data URLs) that record fields like coach images and
// uploaded videos embed directly.  The console stores the encoded
// string inside the record; nothing here touches storage.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTooLarge is returned when an upload exceeds the configured size
// limit.  Inline-encoded payloads live inside the record store, so an
// oversized file would bloat every subsequent save of its collection.
var ErrTooLarge = errors.New("file too large to inline")

// EncodeDataURL wraps already-read bytes as a base64 data URL.
func EncodeDataURL(contentType string, data []byte) string {
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// EncodeReader reads at most maxBytes from r and returns the data URL.
// Reading even one byte past the limit fails with ErrTooLarge; a
// truncated encoding would be worse than a rejected upload.
func EncodeReader(r io.Reader, contentType string, maxBytes int64) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, maxBytes)
	}
	return EncodeDataURL(contentType, data), nil
}
