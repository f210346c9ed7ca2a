package detect

import (
	"context"
	"sync"
)

type stubEngine struct {
	mu    sync.Mutex
	text  string
	err   error
	calls []DecodedImage
}

func (s *stubEngine) Name() string     { return "stub" }
func (s *stubEngine) GetModel() string { return "stub-model" }

func (s *stubEngine) Generate(_ context.Context, img DecodedImage, _ string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, img)
	return s.text, s.err
}

func (s *stubEngine) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}
