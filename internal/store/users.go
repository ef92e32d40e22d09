package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"

	"gorm.io/gorm"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: username %q", apperr.ErrConflict, u.Username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *Store) UserByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("user_id = ?", id).First(&u).Error; err != nil {
		return nil, wrapFind("find user", err)
	}
	return &u, nil
}

func (s *Store) UserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, wrapFind("find user", err)
	}
	return &u, nil
}

func (s *Store) TouchLastLogin(ctx context.Context, id uint, now time.Time) error {
	res := s.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", id).
		Update("last_login", now)
	if res.Error != nil {
		return fmt.Errorf("update last_login: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
