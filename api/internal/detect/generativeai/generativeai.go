package generativeai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
)

// Engine calls Gemini through the older generative-ai-go SDK. A client is
// opened per call and closed when the call returns.
type Engine struct {
	APIKey string
	Model  string
}

func New(cfg *config.Config) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(cfg.GeminiAPIKey),
		Model:  strings.TrimSpace(cfg.GeminiModel),
	}
}

func (e *Engine) Name() string     { return "generativeai" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, img detect.DecodedImage, instruction string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("generativeai: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(0),
		ResponseMIMEType: "application/json",
	}

	resp, err := m.GenerateContent(ctx,
		&genai.Blob{MIMEType: img.MimeType, Data: img.Data},
		genai.Text(instruction),
	)
	if err != nil {
		return "", fmt.Errorf("generativeai generate: %w", err)
	}

	txt := firstText(resp)
	if strings.TrimSpace(txt) == "" {
		return "", errors.New("generativeai: empty response")
	}
	return txt, nil
}

// firstText joins the text parts of the first candidate that has content.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for _, c := range resp.Candidates {
		if c == nil || c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
