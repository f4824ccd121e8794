package composer

import (
	"encoding/base64"
	"errors"
	"strings"
)

// ErrInvalidDataURL is returned when a file item's content is not a data URL.
var ErrInvalidDataURL = errors.New("content is not a data URL")

// EncodeDataURL encodes raw file bytes as a data URL, the same transportable
// text form the browser's FileReader.readAsDataURL produces. The MIME type
// travels inside the URL, so the payload is self-describing and ASCII-safe.
func EncodeDataURL(mimeType string, data []byte) string {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeDataURL reverses EncodeDataURL, returning the MIME type and raw
// bytes. Used when downloading a retrieved file item.
func DecodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrInvalidDataURL
	}

	mimeType, _ := strings.CutSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, err
	}
	return mimeType, data, nil
}

