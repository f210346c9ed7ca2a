package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"realcheck/api/internal/config"
)

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
			ErrorLog:          log.New(logrus.StandardLogger().WriterLevel(logrus.ErrorLevel), "", 0),
		},
	}
}

func (s *Server) Addr() string { return s.httpServer.Addr }

// Run blocks until the listener fails or Shutdown is called; the latter
// is not reported as an error.
func (s *Server) Run() error {
	logrus.Infof("listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
