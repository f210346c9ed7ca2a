package gemini

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
)

func newTestEngine(t *testing.T, h http.HandlerFunc) *Engine {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	eng, err := New(context.Background(), &config.Config{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-test",
		GeminiBaseURL: srv.URL + "/",
	})
	require.NoError(t, err)
	return eng
}

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), &config.Config{GeminiModel: "m"})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	var gotPath, gotBody string
	eng := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"is_ai\":true,\"confidence\":87,\"reason\":\"x\"}"}]}}]}`)
	})

	assert.Equal(t, "gemini", eng.Name())
	assert.Equal(t, "gemini-test", eng.GetModel())

	img := detect.DecodedImage{MimeType: "image/png", Payload: "AAAA", Data: []byte{0, 0, 0}}
	txt, err := eng.Generate(context.Background(), img, "classify please")
	require.NoError(t, err)

	assert.JSONEq(t, `{"is_ai":true,"confidence":87,"reason":"x"}`, txt)
	assert.True(t, strings.HasSuffix(gotPath, "models/gemini-test:generateContent"), gotPath)
	assert.Contains(t, gotBody, "image/png")
	assert.Contains(t, gotBody, "AAAA")
	assert.Contains(t, gotBody, "classify please")
}

func TestGenerateRemoteError(t *testing.T) {
	eng := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := eng.Generate(context.Background(), detect.DecodedImage{MimeType: "image/png", Data: []byte{1}}, "x")
	assert.Error(t, err)
}

func TestGenerateEmptyResponse(t *testing.T) {
	eng := newTestEngine(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	_, err := eng.Generate(context.Background(), detect.DecodedImage{MimeType: "image/png", Data: []byte{1}}, "x")
	assert.Error(t, err)
}
