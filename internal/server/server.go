package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"IssueCreator/internal/metrics"
)

func NewHTTPServer(addr string, h *Handlers) *http.Server {
	gin.SetMode(gin.ReleaseMode)
	if h.Logger == nil {
		h.Logger = slog.Default()
	}
	if h.Now == nil {
		h.Now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery(), Observability(h.Logger))

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.POST("/issues", h.CreateIssue)
	r.POST("/issues/assemble", h.AssembleIssue)
	r.GET("/issues", h.ListRuns)

	return &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
