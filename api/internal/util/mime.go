package util

import (
	"encoding/base64"
	"errors"
	"net/http"
	"regexp"
	"strings"
)

var (
	ErrNotDataURL   = errors.New("no ',' between data URL header and payload")
	ErrBadHeader    = errors.New("data URL header is not data:<mime>;base64")
	ErrEmptyPayload = errors.New("empty base64 payload")
)

var reDataURLHeader = regexp.MustCompile(`(?i)^data:([^;,\s]+);base64$`)

func SniffMimeHTTP(b []byte) string {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xD8 {
		return "image/jpeg"
	}
	if len(b) >= 8 &&
		b[0] == 0x89 && b[1] == 0x50 && b[2] == 0x4E && b[3] == 0x47 &&
		b[4] == 0x0D && b[5] == 0x0A && b[6] == 0x1A && b[7] == 0x0A {
		return "image/png"
	}
	if len(b) > 0 {
		return http.DetectContentType(b)
	}
	return "application/octet-stream"
}

func MakeDataURL(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// ParseDataURL splits data:<mime>;base64,<payload> at the first comma.
// When only the header is unrecognised the payload is still returned along
// with ErrBadHeader, so callers may fall back to a default MIME type.
func ParseDataURL(s string) (mime, payload string, err error) {
	s = strings.TrimSpace(s)
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return "", "", ErrNotDataURL
	}
	header, payload := s[:idx], s[idx+1:]
	if payload == "" {
		return "", "", ErrEmptyPayload
	}
	m := reDataURLHeader.FindStringSubmatch(header)
	if m == nil {
		return "", payload, ErrBadHeader
	}
	return m[1], payload, nil
}

// DecodeBase64 accepts standard and URL-safe alphabets, padded or not.
func DecodeBase64(s string) ([]byte, error) {
	var firstErr error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	} {
		b, err := enc.DecodeString(s)
		if err == nil {
			return b, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
