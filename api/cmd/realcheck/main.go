package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
	"realcheck/api/internal/detect/engines"
	"realcheck/api/internal/handle"
	"realcheck/api/internal/httpserver"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	cfg.SetupLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := engines.New(ctx, cfg)
	if err != nil {
		logrus.Fatalf("engine: %v", err)
	}
	gw := detect.NewGateway(cfg, engine)
	h := handle.New(gw)

	srv := httpserver.New(cfg, httpserver.NewRouter(cfg, h))
	errc := make(chan error, 1)
	go func() { errc <- srv.Run() }()

	logrus.WithFields(logrus.Fields{
		"engine":      engine.Name(),
		"model":       engine.GetModel(),
		"mime_policy": cfg.MimePolicy,
	}).Info("RealCheck API started")

	select {
	case err := <-errc:
		if err != nil {
			logrus.Fatalf("error occurred while running http server: %s", err.Error())
		}
		return
	case <-ctx.Done():
	}

	logrus.Info("RealCheck API shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		logrus.Errorf("error occurred on server shutting down: %s", err.Error())
	}
}
