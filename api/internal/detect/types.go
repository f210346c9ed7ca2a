package detect

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ImageSubmission is the request payload: a data URL in RawBase64.
type ImageSubmission struct {
	RawBase64 string `json:"imageBase64"`
}

// DecodedImage lives for a single request. Payload is the base64 text
// exactly as submitted; Data is its decoded form sent to the model.
type DecodedImage struct {
	MimeType string
	Payload  string
	Data     []byte
}

// Verdict is the model's JSON object as-is. The model is asked for
// is_ai, confidence and reason but any extra fields are kept.
type Verdict map[string]any

func (v Verdict) IsAI() (bool, bool) {
	switch x := v["is_ai"].(type) {
	case bool:
		return x, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return b, err == nil
	}
	return false, false
}

func (v Verdict) Confidence() (float64, bool) {
	switch x := v["confidence"].(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case int:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(x), "%"), 64)
		return f, err == nil
	}
	return 0, false
}

func (v Verdict) Reason() string {
	s, _ := v["reason"].(string)
	return s
}
