package service

import (
	"context"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
	"dayplan/internal/store"
	"dayplan/internal/timeutil"
)

type TodoStore interface {
	UserByID(ctx context.Context, id uint) (*model.User, error)
	CreateTodo(ctx context.Context, t *model.TodoItem) error
	TodoByID(ctx context.Context, id, userID uint) (*model.TodoItem, error)
	TodosForMonth(ctx context.Context, userID uint, from, to time.Time) ([]model.TodoItem, error)
	UpdateTodo(ctx context.Context, id, userID uint, p store.Patch, now time.Time) error
	DeleteTodo(ctx context.Context, id, userID uint) error
}

type TodoService struct {
	store TodoStore
}

func NewTodoService(st TodoStore) *TodoService { return &TodoService{store: st} }

func (s *TodoService) Create(ctx context.Context, req model.CreateTodoRequest) (*model.TodoItem, error) {
	switch {
	case req.UserID == 0:
		return nil, apperr.Validationf("missing user_id")
	case req.Title == "":
		return nil, apperr.Validationf("missing title")
	case req.Description == "":
		return nil, apperr.Validationf("missing description")
	case req.DueDate == "":
		return nil, apperr.Validationf("missing due_date")
	case req.Priority == "":
		return nil, apperr.Validationf("missing priority")
	case req.Status == "":
		return nil, apperr.Validationf("missing status")
	}
	if !model.ValidPriority(req.Priority) {
		return nil, apperr.Validationf("invalid priority %q", req.Priority)
	}
	if !model.ValidTodoStatus(req.Status) {
		return nil, apperr.Validationf("invalid status %q", req.Status)
	}
	due, err := timeutil.Parse(req.DueDate)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	if _, err := s.store.UserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := timeutil.Now()
	t := &model.TodoItem{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		DueDate:      due,
		Priority:     req.Priority,
		Status:       req.Status,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.store.CreateTodo(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ListForMonth returns the user's todos due in the month of the selected day.
func (s *TodoService) ListForMonth(ctx context.Context, userID uint, selector string) ([]model.TodoItem, error) {
	day, err := timeutil.ParseSelector(selector)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	from, to := timeutil.MonthBounds(day)
	return s.store.TodosForMonth(ctx, userID, from, to)
}

func (s *TodoService) Get(ctx context.Context, id, userID uint) (*model.TodoItem, error) {
	return s.store.TodoByID(ctx, id, userID)
}

func (s *TodoService) Update(ctx context.Context, id uint, req model.UpdateTodoRequest) (*model.TodoItem, error) {
	var p store.Patch
	store.SetIf(&p, "title", req.Title)
	store.SetIf(&p, "description", req.Description)
	if req.DueDate != nil {
		due, err := timeutil.Parse(*req.DueDate)
		if err != nil {
			return nil, apperr.Validationf("%v", err)
		}
		p.Set("due_date", due)
	}
	if req.Priority != nil {
		if !model.ValidPriority(*req.Priority) {
			return nil, apperr.Validationf("invalid priority %q", *req.Priority)
		}
		p.Set("priority", *req.Priority)
	}
	if req.Status != nil {
		if !model.ValidTodoStatus(*req.Status) {
			return nil, apperr.Validationf("invalid status %q", *req.Status)
		}
		p.Set("status", *req.Status)
	}
	if p.Empty() {
		return nil, apperr.Validationf("no fields to update")
	}
	if _, err := s.store.TodoByID(ctx, id, req.UserID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateTodo(ctx, id, req.UserID, p, timeutil.Now()); err != nil {
		return nil, err
	}
	return s.store.TodoByID(ctx, id, req.UserID)
}

func (s *TodoService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.store.TodoByID(ctx, id, userID); err != nil {
		return err
	}
	return s.store.DeleteTodo(ctx, id, userID)
}
