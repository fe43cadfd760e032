package usecase

import (
	"context"
	"log/slog"
	"time"

	"IssueCreator/internal/ports"
)

// Scheduler wires the weekly driver with the runner.
type Scheduler struct {
	driver ports.Scheduler
	runner *Runner
	logger *slog.Logger
}

// NewScheduler returns a helper to start/stop the weekly job.
func NewScheduler(driver ports.Scheduler, runner *Runner, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{driver: driver, runner: runner, logger: logger}
}

// Start registers the issue job with the provided driver. Each trigger
// assembles and creates one live issue; failures are logged and the next
// week is still scheduled.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.runner == nil {
		return nil
	}

	job := func(trigger time.Time) {
		result, err := s.runner.RunAssembled(ctx, trigger, false)
		if err != nil {
			s.logger.Error("scheduled issue failed", "trigger", trigger, "error", err)
			return
		}
		s.logger.Info("scheduled issue created",
			"issue", result.IssueNumber,
			"email_id", result.EmailID,
			"scheduled_for", result.ScheduledFor)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
