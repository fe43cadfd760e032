package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"IssueCreator/internal/domain"
	"IssueCreator/internal/ports"
)

// Runner is the entry point shared by every trigger: it runs the
// orchestrator and records live runs in the optional run log.
type Runner struct {
	assembler    *Assembler
	orchestrator *Orchestrator
	recorder     ports.RunRecorder
	logger       *slog.Logger
}

// NewRunner wires the use cases. Assembler and recorder may be nil.
func NewRunner(orchestrator *Orchestrator, assembler *Assembler, recorder ports.RunRecorder, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		assembler:    assembler,
		orchestrator: orchestrator,
		recorder:     recorder,
		logger:       logger,
	}
}

// RunEvent processes a ready event.
func (r *Runner) RunEvent(ctx context.Context, event domain.Event) (domain.Result, error) {
	result, err := r.orchestrator.Run(ctx, event)
	if err != nil {
		return domain.Result{}, err
	}

	if r.recorder != nil && !result.DryRun {
		// the email already exists upstream, so a failed write is not fatal
		if recErr := r.recorder.RecordRun(ctx, result); recErr != nil {
			r.logger.Error("record run", "issue", result.IssueNumber, "email_id", result.EmailID, "error", recErr)
		}
	}

	return result, nil
}

// RunAssembled builds the event from upstream sources, then runs it.
func (r *Runner) RunAssembled(ctx context.Context, ref time.Time, dryRun bool) (domain.Result, error) {
	if r.assembler == nil {
		return domain.Result{}, fmt.Errorf("assembler is not configured")
	}

	event, err := r.assembler.Assemble(ctx, ref, dryRun)
	if err != nil {
		return domain.Result{}, fmt.Errorf("assemble issue: %w", err)
	}
	return r.RunEvent(ctx, event)
}
