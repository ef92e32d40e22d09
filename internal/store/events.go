package store

import (
	"context"
	"fmt"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
)

func (s *Store) CreateEvent(ctx context.Context, e *model.CalendarEvent) error {
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (s *Store) EventByID(ctx context.Context, id, userID uint) (*model.CalendarEvent, error) {
	var e model.CalendarEvent
	err := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", id, userID).
		First(&e).Error
	if err != nil {
		return nil, wrapFind("find event", err)
	}
	return &e, nil
}

// EventsOverlapping returns the user's events whose [start_date, end_date]
// span intersects the closed [from, to] interval.
func (s *Store) EventsOverlapping(ctx context.Context, userID uint, from, to time.Time) ([]model.CalendarEvent, error) {
	var events []model.CalendarEvent
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND start_date <= ? AND end_date >= ?", userID, to, from).
		Order("start_date").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *Store) UpdateEvent(ctx context.Context, id, userID uint, p Patch, now time.Time) error {
	res := s.db.WithContext(ctx).Model(&model.CalendarEvent{}).
		Where("event_id = ? AND user_id = ?", id, userID).
		Updates(p.changes(now))
	if res.Error != nil {
		return fmt.Errorf("update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEvent(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", id, userID).
		Delete(&model.CalendarEvent{})
	if res.Error != nil {
		return fmt.Errorf("delete event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
