package store

import (
	"context"
	"fmt"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
)

func (s *Store) CreateLog(ctx context.Context, l *model.DailyLog) error {
	if err := s.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("insert log: %w", err)
	}
	return nil
}

func (s *Store) LogByID(ctx context.Context, id, userID uint) (*model.DailyLog, error) {
	var l model.DailyLog
	err := s.db.WithContext(ctx).
		Where("log_id = ? AND user_id = ?", id, userID).
		First(&l).Error
	if err != nil {
		return nil, wrapFind("find log", err)
	}
	return &l, nil
}

// LogsForDay returns the user's logs with date in the half-open [from, to).
func (s *Store) LogsForDay(ctx context.Context, userID uint, from, to time.Time) ([]model.DailyLog, error) {
	var logs []model.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, from, to).
		Order("date").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	return logs, nil
}

func (s *Store) UpdateLog(ctx context.Context, id, userID uint, p Patch, now time.Time) error {
	res := s.db.WithContext(ctx).Model(&model.DailyLog{}).
		Where("log_id = ? AND user_id = ?", id, userID).
		Updates(p.changes(now))
	if res.Error != nil {
		return fmt.Errorf("update log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// row vanished between locate and update
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteLog(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("log_id = ? AND user_id = ?", id, userID).
		Delete(&model.DailyLog{})
	if res.Error != nil {
		return fmt.Errorf("delete log: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
