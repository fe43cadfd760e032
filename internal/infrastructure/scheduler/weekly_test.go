package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"IssueCreator/internal/schedule"
)

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	waits   chan time.Duration
	release chan time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now, waits: make(chan time.Duration, 8), release: make(chan time.Time)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.waits <- d
	return c.release
}

func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	now := c.now
	c.mu.Unlock()
	c.release <- now
}

func TestWeeklySchedulerFiresAtSlot(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC))
	w := NewWeeklyScheduler(schedule.Slot{Weekday: time.Friday, Hour: 10})
	w.now = clock.Now
	w.after = clock.After

	fired := make(chan time.Time, 2)
	if err := w.Start(context.Background(), func(at time.Time) { fired <- at }); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	wait := <-clock.waits
	if wait != 22*time.Hour {
		t.Fatalf("first wait = %s, want 22h", wait)
	}
	clock.advance(wait)

	at := <-fired
	if !at.Equal(time.Date(2025, 1, 3, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("fired at %s", at)
	}

	if wait := <-clock.waits; wait != 7*24*time.Hour {
		t.Fatalf("second wait = %s, want one week", wait)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := w.Stop(ctx); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestWeeklySchedulerStopsOnContext(t *testing.T) {
	t.Parallel()

	clock := newFakeClock(time.Date(2025, 1, 2, 12, 0, 0, 0, time.UTC))
	w := NewWeeklyScheduler(schedule.DefaultSlot)
	w.now = clock.Now
	w.after = clock.After

	ctx, cancel := context.WithCancel(context.Background())
	if err := w.Start(ctx, func(time.Time) { t.Error("job must not run") }); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	<-clock.waits
	cancel()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := w.Stop(stopCtx); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestWeeklySchedulerNilJobAndDoubleStop(t *testing.T) {
	t.Parallel()

	w := NewWeeklyScheduler(schedule.DefaultSlot)
	if err := w.Start(context.Background(), nil); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if err := w.Stop(context.Background()); err != nil {
		t.Fatalf("Stop returned error: %v", err)
	}
}

func TestNext(t *testing.T) {
	t.Parallel()

	w := NewWeeklyScheduler(schedule.DefaultSlot)
	w.now = func() time.Time { return time.Date(2025, 1, 6, 17, 0, 0, 0, time.UTC) }
	if got := w.Next(); !got.Equal(time.Date(2025, 1, 13, 17, 0, 0, 0, time.UTC)) {
		t.Fatalf("Next() = %s", got)
	}
}
