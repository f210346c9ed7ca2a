package util

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrNoJSONObject = errors.New("no JSON object in text")

// ExtractJSON recovers a JSON object from free-form model output.
// The trimmed text is parsed as-is first; failing that, the span from the
// first '{' to the last '}' is parsed. Numbers are kept as json.Number so
// the object re-encodes without precision loss.
func ExtractJSON(text string) (map[string]any, error) {
	s := strings.TrimSpace(text)
	if obj, err := decodeObject(s); err == nil {
		return obj, nil
	}

	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return nil, ErrNoJSONObject
	}
	obj, err := decodeObject(s[start : end+1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoJSONObject, err)
	}
	return obj, nil
}

func decodeObject(s string) (map[string]any, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errors.New("not an object")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return m, nil
}
