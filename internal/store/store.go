// Package store is the persistence layer. Every read and write is scoped by
// the owning user where the schema has an owner column; a miss on the
// (id, user_id) pair is reported as apperr.ErrNotFound regardless of whether
// the row exists under another user.
package store

import (
	"errors"
	"fmt"

	"dayplan/internal/apperr"
	"dayplan/internal/model"

	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store { return &Store{db: db} }

// AutoMigrate bootstraps the schema. Run once at process start.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&model.User{},
		&model.DailyLog{},
		&model.TodoItem{},
		&model.CalendarEvent{},
	)
}

func wrapFind(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
