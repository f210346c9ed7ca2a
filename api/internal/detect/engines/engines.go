// Package engines wires the configured provider to a detect.Engine.
package engines

import (
	"context"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
	"realcheck/api/internal/detect/gemini"
	"realcheck/api/internal/detect/generativeai"
)

func New(ctx context.Context, cfg *config.Config) (detect.Engine, error) {
	g, err := gemini.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	engs := &detect.Engines{
		Gemini:       g,
		GenerativeAI: generativeai.New(cfg),
	}
	return engs.GetEngine(cfg.Provider)
}
