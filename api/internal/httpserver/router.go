package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"realcheck/api/internal/config"
	"realcheck/api/internal/handle"
)

func NewRouter(cfg *config.Config, h *handle.Handle) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()

	r.Use(
		gin.Recovery(),
		RequestID(),
		Logger(),
		CORS(cfg.CORSOrigin),
		BodyLimit(cfg.BodyLimitBytes()),
		Timeout(cfg.RequestTimeout),
	)

	r.GET("/", h.Root)
	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.POST("/analyze", h.Analyze)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found."})
	})
	return r
}
