package telegram

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"

	"realcheck/api/internal/detect"
	"realcheck/api/internal/util"
)

const defaultMaxImageBytes = 20 << 20

var errTooLarge = errors.New("image is too large")

func largestPhoto(ps []tgbotapi.PhotoSize) tgbotapi.PhotoSize {
	best := ps[len(ps)-1]
	for _, p := range ps {
		if p.Width*p.Height > best.Width*best.Height {
			best = p
		}
	}
	return best
}

func (r *Router) acceptImage(ctx context.Context, chatID int64, fileID, mimeHint string) {
	log := logrus.WithFields(logrus.Fields{"chat_id": chatID, "file_id": fileID})
	r.send(chatID, PhotoAcceptedText)

	url, err := r.Bot.GetFileDirectURL(fileID)
	if err != nil {
		log.WithError(err).Error("get file url")
		r.send(chatID, DownloadFailedText)
		return
	}
	img, err := r.download(ctx, url)
	if err != nil {
		log.WithError(err).Error("download image")
		if errors.Is(err, errTooLarge) {
			r.send(chatID, TooLargeText)
		} else {
			r.send(chatID, DownloadFailedText)
		}
		return
	}

	mime := mimeHint
	if mime == "" {
		mime = util.SniffMimeHTTP(img)
	}
	sub := detect.ImageSubmission{
		RawBase64: util.MakeDataURL(mime, base64.StdEncoding.EncodeToString(img)),
	}

	v, err := r.Analyzer.Analyze(ctx, sub)
	if err != nil {
		r.send(chatID, ErrorText(err))
		return
	}
	r.send(chatID, FormatVerdict(v))
}

func (r *Router) download(ctx context.Context, url string) ([]byte, error) {
	limit := r.MaxImageBytes
	if limit <= 0 {
		limit = defaultMaxImageBytes
	}
	httpc := r.HTTP
	if httpc == nil {
		httpc = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download status %d", resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errTooLarge
	}
	if len(b) == 0 {
		return nil, errors.New("empty file")
	}
	return b, nil
}
