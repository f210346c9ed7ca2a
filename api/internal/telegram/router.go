package telegram

import (
	"context"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"realcheck/api/internal/detect"
)

// Sender is the part of *tgbotapi.BotAPI the router uses.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetFileDirectURL(fileID string) (string, error)
}

type Analyzer interface {
	Analyze(ctx context.Context, sub detect.ImageSubmission) (detect.Verdict, error)
}

type Router struct {
	Bot      Sender
	Analyzer Analyzer
	HTTP     *http.Client

	// MaxImageBytes caps downloaded files; 0 means 20 MB.
	MaxImageBytes int64
	// Model is shown by /health.
	Model string
}

func NewRouter(bot Sender, an Analyzer, model string, maxImageBytes int64) *Router {
	return &Router{
		Bot:           bot,
		Analyzer:      an,
		HTTP:          &http.Client{Timeout: 60 * time.Second},
		MaxImageBytes: maxImageBytes,
		Model:         model,
	}
}

func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	msg := upd.Message
	if msg == nil {
		return
	}
	cid := msg.Chat.ID

	switch {
	case msg.IsCommand():
		r.HandleCommand(msg)
	case len(msg.Photo) > 0:
		ph := largestPhoto(msg.Photo)
		r.acceptImage(ctx, cid, ph.FileID, "")
	case msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/"):
		r.acceptImage(ctx, cid, msg.Document.FileID, msg.Document.MimeType)
	case msg.Document != nil:
		r.send(cid, NotAnImageText)
	default:
		r.send(cid, HelpText)
	}
}

func (r *Router) HandleCommand(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start", "help":
		r.send(cid, HelpText)
	case "health":
		r.send(cid, "✅ OK, model: "+r.Model)
	default:
		r.send(cid, "Unknown command. Try /help")
	}
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		logrus.WithError(err).WithField("chat_id", chatID).Warn("telegram send failed")
	}
}
