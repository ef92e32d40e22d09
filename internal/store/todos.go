package store

import (
	"context"
	"fmt"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
)

func (s *Store) CreateTodo(ctx context.Context, t *model.TodoItem) error {
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (s *Store) TodoByID(ctx context.Context, id, userID uint) (*model.TodoItem, error) {
	var t model.TodoItem
	err := s.db.WithContext(ctx).
		Where("todo_id = ? AND user_id = ?", id, userID).
		First(&t).Error
	if err != nil {
		return nil, wrapFind("find todo", err)
	}
	return &t, nil
}

// TodosForMonth returns the user's todos with due_date in the closed
// [from, to] month interval.
func (s *Store) TodosForMonth(ctx context.Context, userID uint, from, to time.Time) ([]model.TodoItem, error) {
	var todos []model.TodoItem
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND due_date >= ? AND due_date <= ?", userID, from, to).
		Order("due_date").
		Find(&todos).Error
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *Store) UpdateTodo(ctx context.Context, id, userID uint, p Patch, now time.Time) error {
	res := s.db.WithContext(ctx).Model(&model.TodoItem{}).
		Where("todo_id = ? AND user_id = ?", id, userID).
		Updates(p.changes(now))
	if res.Error != nil {
		return fmt.Errorf("update todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteTodo(ctx context.Context, id, userID uint) error {
	res := s.db.WithContext(ctx).
		Where("todo_id = ? AND user_id = ?", id, userID).
		Delete(&model.TodoItem{})
	if res.Error != nil {
		return fmt.Errorf("delete todo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
