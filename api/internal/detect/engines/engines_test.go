package engines

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realcheck/api/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		provider string
		wantName string
		wantErr  bool
	}{
		{provider: "", wantName: "gemini"},
		{provider: "gemini", wantName: "gemini"},
		{provider: "generativeai", wantName: "generativeai"},
		{provider: "openai", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			eng, err := New(context.Background(), &config.Config{
				Provider:     tt.provider,
				GeminiAPIKey: "k",
				GeminiModel:  "gemini-2.5-flash",
			})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, eng.Name())
			assert.Equal(t, "gemini-2.5-flash", eng.GetModel())
		})
	}
}

func TestNewWithoutKey(t *testing.T) {
	_, err := New(context.Background(), &config.Config{GeminiModel: "m"})
	assert.Error(t, err)
}
