package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
)

// Engine calls Gemini through the Google Gen AI SDK.
type Engine struct {
	Model  string
	client *genai.Client
}

// New builds the SDK client once; it does not touch the network.
func New(ctx context.Context, cfg *config.Config) (*Engine, error) {
	key := strings.TrimSpace(cfg.GeminiAPIKey)
	if key == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}
	cc := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimSpace(cfg.GeminiBaseURL); base != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	cl, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: new client: %w", err)
	}
	return &Engine{
		Model:  strings.TrimSpace(cfg.GeminiModel),
		client: cl,
	}, nil
}

func (e *Engine) Name() string     { return "gemini" }
func (e *Engine) GetModel() string { return e.Model }

func (e *Engine) Generate(ctx context.Context, img detect.DecodedImage, instruction string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(img.Data, img.MimeType),
			genai.NewPartFromText(instruction),
		}, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.Model, contents, &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	txt := resp.Text()
	if strings.TrimSpace(txt) == "" {
		return "", errors.New("gemini: empty response")
	}
	return txt, nil
}
