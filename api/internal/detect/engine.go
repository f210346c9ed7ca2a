package detect

import (
	"context"
	"fmt"
)

// Engine is one remote vision model: image + instruction in, free text out.
type Engine interface {
	Name() string
	GetModel() string
	Generate(ctx context.Context, img DecodedImage, instruction string) (string, error)
}

type Engines struct {
	Gemini       Engine
	GenerativeAI Engine
}

func (e *Engines) GetEngine(name string) (Engine, error) {
	var eng Engine
	switch name {
	case "", "gemini", "genai":
		eng = e.Gemini
	case "generativeai", "generative-ai", "legacy":
		eng = e.GenerativeAI
	default:
		return nil, fmt.Errorf("unknown llm provider %q; use 'gemini' or 'generativeai'", name)
	}
	if eng == nil {
		return nil, fmt.Errorf("llm provider %q is not configured", name)
	}
	return eng, nil
}
