package scheduler

import (
	"context"
	"sync"
	"time"

	"IssueCreator/internal/ports"
	"IssueCreator/internal/schedule"
)

// WeeklyScheduler fires the job once a week at the configured slot.
type WeeklyScheduler struct {
	slot  schedule.Slot
	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

var _ ports.Scheduler = (*WeeklyScheduler)(nil)

// NewWeeklyScheduler builds a scheduler for the given weekly slot.
func NewWeeklyScheduler(slot schedule.Slot) *WeeklyScheduler {
	return &WeeklyScheduler{slot: slot, now: time.Now, after: time.After}
}

// Next returns the next trigger time after now.
func (w *WeeklyScheduler) Next() time.Time {
	return schedule.NextSlot(w.now(), w.slot)
}

// Start waits for each slot in a goroutine and calls job with the slot time.
// Calling Start twice is a no-op.
func (w *WeeklyScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if job == nil {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop != nil {
		return nil
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	w.stop, w.done = stop, done

	go func() {
		defer close(done)
		for {
			next := w.Next()
			select {
			case <-w.after(next.Sub(w.now())):
				job(next)
			case <-ctx.Done():
				return
			case <-stop:
				return
			}
		}
	}()

	return nil
}

// Stop halts the goroutine and waits for a running job to return.
func (w *WeeklyScheduler) Stop(ctx context.Context) error {
	w.mu.Lock()
	stop, done := w.stop, w.done
	w.stop, w.done = nil, nil
	w.mu.Unlock()

	if stop == nil {
		return nil
	}
	close(stop)

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
