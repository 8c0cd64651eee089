package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// ParseDataURI splits a "data:<contentType>;base64,<payload>" string into its
// content type and decoded payload. Plain strings are passed through as
// text/plain so paper scans submitted without a data URI still upload.
func ParseDataURI(data string) (string, []byte, error) {
	if !strings.HasPrefix(data, "data:") {
		return "text/plain", []byte(data), nil
	}

	meta, payload, found := strings.Cut(data[len("data:"):], ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	contentType := strings.TrimSuffix(meta, ";base64")
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// Some clients submit unpadded payloads.
		decoded, err = base64.RawStdEncoding.DecodeString(payload)
		if err != nil {
			return "", nil, fmt.Errorf("decode data URI payload: %w", err)
		}
	}
	return contentType, decoded, nil
}
