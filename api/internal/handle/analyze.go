package handle

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"realcheck/api/internal/detect"
)

const (
	LivenessText = "RealCheck API server is running."

	msgMissingInput  = "Missing imageBase64 in request body."
	msgBadJSON       = "Request body must be a JSON object."
	msgTooLarge      = "Request body is too large."
	msgRemoteFailure = "Failed to analyze image due to an internal server error."
	msgUnparsable    = "Analysis completed but model output was unparsable."
)

type AnalyzeRequest struct {
	ImageBase64 string `json:"imageBase64"`
}

func (h *Handle) Root(c *gin.Context) {
	c.String(http.StatusOK, LivenessText)
}

func (h *Handle) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var mbe *http.MaxBytesError
		switch {
		case errors.As(err, &mbe):
			writeError(c, http.StatusRequestEntityTooLarge, msgTooLarge)
		case errors.Is(err, io.EOF):
			writeError(c, http.StatusBadRequest, msgMissingInput)
		default:
			writeError(c, http.StatusBadRequest, msgBadJSON)
		}
		return
	}

	verdict, err := h.gw.Analyze(c.Request.Context(), detect.ImageSubmission{RawBase64: req.ImageBase64})
	if err != nil {
		h.writeAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, verdict)
}

func (h *Handle) writeAnalyzeError(c *gin.Context, err error) {
	var (
		rce *detect.RemoteCallError
		uoe *detect.UnparsableOutputError
	)
	switch {
	case errors.Is(err, detect.ErrMissingInput):
		writeError(c, http.StatusBadRequest, msgMissingInput)
	case errors.Is(err, detect.ErrMalformedInput):
		writeError(c, http.StatusBadRequest, malformedMessage(err))
	case errors.As(err, &uoe):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":        msgUnparsable,
			"model_output": uoe.ModelOutput,
		})
	case errors.As(err, &rce):
		writeError(c, http.StatusInternalServerError, msgRemoteFailure)
	default:
		logrus.WithError(err).Error("analyze: unexpected error")
		writeError(c, http.StatusInternalServerError, msgRemoteFailure)
	}
}

// malformedMessage keeps the decoder's reason but never echoes payload data.
func malformedMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return "Invalid imageBase64: " + msg[i+2:]
	}
	return "Invalid imageBase64 data URL."
}
