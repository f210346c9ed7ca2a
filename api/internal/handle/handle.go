package handle

import (
	"context"

	"github.com/gin-gonic/gin"

	"realcheck/api/internal/detect"
)

// Analyzer is what the HTTP layer needs from detect.Gateway.
type Analyzer interface {
	Analyze(ctx context.Context, sub detect.ImageSubmission) (detect.Verdict, error)
}

type Handle struct {
	gw Analyzer
}

func New(gw Analyzer) *Handle {
	return &Handle{
		gw: gw,
	}
}

func writeError(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"error": msg})
}
