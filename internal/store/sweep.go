package store

import (
	"context"
	"fmt"
	"time"

	"dayplan/internal/model"
)

// The three sweep transitions below are bulk conditional updates evaluated
// against the supplied wall-clock time. Each is idempotent: re-running with
// no matching rows affects nothing and reports zero.

// MarkOverdueTodos moves pending todos whose due date has passed to
// "Past Due".
func (s *Store) MarkOverdueTodos(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.TodoItem{}).
		Where("status = ? AND due_date < ?", model.TodoPending, now).
		Updates(map[string]any{"status": model.TodoPastDue, "last_modified": now})
	if res.Error != nil {
		return 0, fmt.Errorf("mark overdue todos: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// StartDueEvents moves upcoming events whose start has passed to Current.
func (s *Store) StartDueEvents(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("status = ? AND start_date < ?", model.EventUpcoming, now).
		Updates(map[string]any{"status": model.EventCurrent, "last_modified": now})
	if res.Error != nil {
		return 0, fmt.Errorf("start due events: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// ExpireEndedEvents moves current events whose end has passed to Past.
func (s *Store) ExpireEndedEvents(ctx context.Context, now time.Time) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("status = ? AND end_date < ?", model.EventCurrent, now).
		Updates(map[string]any{"status": model.EventPast, "last_modified": now})
	if res.Error != nil {
		return 0, fmt.Errorf("expire ended events: %w", res.Error)
	}
	return res.RowsAffected, nil
}
