package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

const requestTimeout = 60 * time.Second

type issueRunner interface {
	RunEvent(ctx context.Context, event domain.Event) (domain.Result, error)
	RunAssembled(ctx context.Context, ref time.Time, dryRun bool) (domain.Result, error)
}

// Handlers exposes the issue use cases over HTTP. Runs is optional.
type Handlers struct {
	Runner issueRunner
	Runs   ports.RunLog
	Logger *slog.Logger
	Now    func() time.Time
}

// NewHandlers wires the handlers.
func NewHandlers(runner issueRunner, runs ports.RunLog, logger *slog.Logger) *Handlers {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handlers{Runner: runner, Runs: runs, Logger: logger, Now: time.Now}
}

func (h *Handlers) Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// CreateIssue runs one invocation for the posted event.
func (h *Handlers) CreateIssue(c *gin.Context) {
	var event domain.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.Runner.RunEvent(ctx, event)
	if err != nil {
		h.fail(c, event.IssueNumber(), err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AssembleIssue builds the event from upstream sources and runs it.
// ?dryRun=true renders without creating the email.
func (h *Handlers) AssembleIssue(c *gin.Context) {
	dryRun, err := strconv.ParseBool(c.DefaultQuery("dryRun", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dryRun must be a boolean"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := h.Runner.RunAssembled(ctx, h.Now(), dryRun)
	if err != nil {
		h.fail(c, 0, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListRuns returns the newest recorded runs.
func (h *Handlers) ListRuns(c *gin.Context) {
	if h.Runs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "run log is not configured"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	runs, err := h.Runs.RecentRuns(c.Request.Context(), limit)
	if err != nil {
		h.Logger.Error("list runs", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "run log unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handlers) fail(c *gin.Context, issue uint32, err error) {
	status := statusFor(err)
	h.Logger.Error("issue invocation failed", "issue", issue, "status", status, "error", err)
	c.JSON(status, gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var (
		parseErr *domain.ParseError
		emailErr *domain.EmailServiceError
	)
	switch {
	case errors.As(err, &parseErr), errors.Is(err, domain.ErrEmptyLinkList):
		return http.StatusUnprocessableEntity
	case errors.As(err, &emailErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
