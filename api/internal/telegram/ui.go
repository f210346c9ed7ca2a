package telegram

import (
	"errors"
	"fmt"
	"strings"

	"realcheck/api/internal/detect"
	"realcheck/api/internal/util"
)

const (
	HelpText = "Send me a photo (or an image file) and I will tell you whether it looks AI-generated or like a real photograph.\nCommands: /help, /health"

	PhotoAcceptedText  = "Got it, analyzing…"
	NotAnImageText     = "That file is not an image. Send a photo or an image file."
	DownloadFailedText = "⚠️ Could not download the image, please try again."
	TooLargeText       = "⚠️ The image is too large."
)

// Telegram rejects messages over 4096 characters.
const maxReasonRunes = 3500

func FormatVerdict(v detect.Verdict) string {
	var sb strings.Builder

	isAI, ok := v.IsAI()
	switch {
	case !ok:
		sb.WriteString("❔ Could not determine whether the image is AI-generated")
	case isAI:
		sb.WriteString("🤖 Likely AI-generated")
	default:
		sb.WriteString("📷 Likely a real photo")
	}
	if conf, ok := v.Confidence(); ok {
		fmt.Fprintf(&sb, " (confidence %.0f%%)", conf)
	}
	if reason := strings.TrimSpace(v.Reason()); reason != "" {
		sb.WriteString("\n\n")
		sb.WriteString(util.Truncate(reason, maxReasonRunes))
	}
	return sb.String()
}

func ErrorText(err error) string {
	var uoe *detect.UnparsableOutputError
	switch {
	case errors.Is(err, detect.ErrMissingInput), errors.Is(err, detect.ErrMalformedInput):
		return "⚠️ Could not read the image."
	case errors.As(err, &uoe):
		return "⚠️ The model answered in an unexpected format, please try again."
	default:
		return "⚠️ Analysis failed, please try again later."
	}
}
