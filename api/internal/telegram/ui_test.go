package telegram

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"realcheck/api/internal/detect"
)

func TestFormatVerdict(t *testing.T) {
	tests := []struct {
		name string
		v    detect.Verdict
		want string
	}{
		{
			name: "ai with confidence",
			v:    detect.Verdict{"is_ai": true, "confidence": json.Number("87"), "reason": "unnatural texture"},
			want: "🤖 Likely AI-generated (confidence 87%)\n\nunnatural texture",
		},
		{
			name: "real photo",
			v:    detect.Verdict{"is_ai": false, "confidence": json.Number("12.4"), "reason": " sensor noise "},
			want: "📷 Likely a real photo (confidence 12%)\n\nsensor noise",
		},
		{
			name: "missing fields",
			v:    detect.Verdict{"verdict": "maybe"},
			want: "❔ Could not determine whether the image is AI-generated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVerdict(tt.v))
		})
	}
}

func TestFormatVerdictTruncatesReason(t *testing.T) {
	out := FormatVerdict(detect.Verdict{"is_ai": true, "reason": strings.Repeat("x", 10000)})
	assert.LessOrEqual(t, utf8.RuneCountInString(out), 4096)
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "⚠️ Could not read the image.", ErrorText(fmt.Errorf("%w: bad", detect.ErrMalformedInput)))
	assert.Contains(t, ErrorText(&detect.UnparsableOutputError{}), "unexpected format")
	assert.Contains(t, ErrorText(&detect.RemoteCallError{Engine: "gemini", Err: errors.New("x")}), "try again later")
}
