package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"realcheck/api/internal/config"
	"realcheck/api/internal/detect"
	"realcheck/api/internal/detect/engines"
	"realcheck/api/internal/telegram"
)

func main() {
	logrus.SetFormatter(new(logrus.JSONFormatter))

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	if err := cfg.ValidateBot(); err != nil {
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

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		logrus.Fatalf("telegram: %v", err)
	}
	bot.Debug = false

	r := telegram.NewRouter(bot, gw, engine.GetModel(), cfg.BodyLimitBytes())

	logrus.WithFields(logrus.Fields{
		"bot":    bot.Self.UserName,
		"engine": engine.Name(),
		"model":  engine.GetModel(),
	}).Info("RealCheck bot started")

	telegram.RunPolling(ctx, bot, func(upd tgbotapi.Update) {
		uctx := ctx
		if cfg.RequestTimeout > 0 {
			var cancel context.CancelFunc
			uctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
			defer cancel()
		}
		r.HandleUpdate(uctx, upd)
	})

	logrus.Info("RealCheck bot stopped")
}
