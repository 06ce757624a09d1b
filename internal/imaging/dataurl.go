// Package imaging converts between files, data URIs and the wire format
// the generation service expects, and shrinks oversized references before
// upload.
package imaging

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// EncodeDataURL wraps raw bytes in a base64 data URI.
func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURL splits a base64 data URI into its MIME type and raw bytes.
func DecodeDataURL(uri string) (mimeType string, data []byte, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}
	rest := uri[len("data:"):]
	sep := strings.Index(rest, ";base64,")
	if sep < 0 {
		return "", nil, fmt.Errorf("data URI is not base64-encoded")
	}
	mimeType = rest[:sep]
	data, err = base64.StdEncoding.DecodeString(rest[sep+len(";base64,"):])
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI payload: %w", err)
	}
	return mimeType, data, nil
}

// ReadFileAsDataURL loads an image file and returns it as a data URI. The
// MIME type comes from content sniffing, not the extension, and anything
// that does not sniff as an image is rejected.
func ReadFileAsDataURL(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	mimeType := http.DetectContentType(raw)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s is not an image (detected %s)", path, mimeType)
	}
	return EncodeDataURL(mimeType, raw), nil
}
