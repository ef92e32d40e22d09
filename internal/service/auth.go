package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
	"dayplan/internal/timeutil"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, u *model.User) error
	UserByID(ctx context.Context, id uint) (*model.User, error)
	UserByUsername(ctx context.Context, username string) (*model.User, error)
	TouchLastLogin(ctx context.Context, id uint, now time.Time) error
}

type AuthService struct {
	store UserStore
}

func NewAuthService(st UserStore) *AuthService { return &AuthService{store: st} }

func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, error) {
	switch {
	case req.Username == "":
		return nil, apperr.Validationf("missing username")
	case req.Password == "":
		return nil, apperr.Validationf("missing password")
	case req.ConfirmPassword == "":
		return nil, apperr.Validationf("missing confirm_password")
	case req.Email == "":
		return nil, apperr.Validationf("missing email")
	case req.Password != req.ConfirmPassword:
		return nil, apperr.Validationf("password and confirm_password must match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := timeutil.Now()
	u := &model.User{
		Username:  req.Username,
		Password:  string(hash),
		Email:     req.Email,
		CreatedAt: now,
		LastLogin: now,
	}
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login verifies credentials and stamps last_login. Unknown username and
// wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, apperr.Validationf("missing username or password")
	}
	u, err := s.store.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, apperr.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, apperr.ErrInvalidCredentials
	}

	now := timeutil.Now()
	if err := s.store.TouchLastLogin(ctx, u.ID, now); err != nil {
		return nil, err
	}
	u.LastLogin = now
	return u, nil
}

func (s *AuthService) User(ctx context.Context, id uint) (*model.User, error) {
	return s.store.UserByID(ctx, id)
}
