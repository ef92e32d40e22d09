package service

import (
	"context"
	"log/slog"
	"time"

	"dayplan/internal/timeutil"
)

// SweepStore is the slice of the persistence gateway the reconciler needs.
type SweepStore interface {
	MarkOverdueTodos(ctx context.Context, now time.Time) (int64, error)
	StartDueEvents(ctx context.Context, now time.Time) (int64, error)
	ExpireEndedEvents(ctx context.Context, now time.Time) (int64, error)
}

// Reconciler advances todo and event status on a wall-clock timer. Stored
// status is derived from time plus user overrides, so each tick re-derives
// it with bulk conditional updates; a missed or overlapping tick is harmless
// because every predicate reads current time, not time since the last tick.
type Reconciler struct {
	store    SweepStore
	interval time.Duration
	now      func() time.Time
}

const DefaultSweepInterval = 10 * time.Minute

func NewReconciler(st SweepStore, interval time.Duration) *Reconciler {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &Reconciler{store: st, interval: interval, now: timeutil.Now}
}

// Run blocks, sweeping every interval until ctx is cancelled.
func (r *Reconciler) Run(ctx context.Context) {
	slog.Info("reconciler started", "interval", r.interval)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.Sweep(ctx)
		}
	}
}

// Sweep runs the three status transitions once. Errors are logged and
// swallowed; rows a failed transition missed stay selectable, so the next
// tick picks them up.
func (r *Reconciler) Sweep(ctx context.Context) {
	now := r.now()
	steps := []struct {
		name string
		fn   func(context.Context, time.Time) (int64, error)
	}{
		{"todos.past_due", r.store.MarkOverdueTodos},
		{"events.current", r.store.StartDueEvents},
		{"events.past", r.store.ExpireEndedEvents},
	}
	for _, step := range steps {
		n, err := step.fn(ctx, now)
		if err != nil {
			slog.Error("sweep.failed", "step", step.name, "err", err)
			continue
		}
		if n > 0 {
			slog.Info("sweep.applied", "step", step.name, "rows", n)
		}
	}
}
