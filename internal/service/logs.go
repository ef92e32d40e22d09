package service

import (
	"context"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
	"dayplan/internal/store"
	"dayplan/internal/timeutil"
)

// LogStore is the slice of the persistence gateway the log service needs.
type LogStore interface {
	UserByID(ctx context.Context, id uint) (*model.User, error)
	CreateLog(ctx context.Context, l *model.DailyLog) error
	LogByID(ctx context.Context, id, userID uint) (*model.DailyLog, error)
	LogsForDay(ctx context.Context, userID uint, from, to time.Time) ([]model.DailyLog, error)
	UpdateLog(ctx context.Context, id, userID uint, p store.Patch, now time.Time) error
	DeleteLog(ctx context.Context, id, userID uint) error
}

type LogService struct {
	store LogStore
}

func NewLogService(st LogStore) *LogService { return &LogService{store: st} }

func (s *LogService) Create(ctx context.Context, req model.CreateLogRequest) (*model.DailyLog, error) {
	switch {
	case req.UserID == 0:
		return nil, apperr.Validationf("missing user_id")
	case req.Content == "":
		return nil, apperr.Validationf("missing content")
	case req.Date == "":
		return nil, apperr.Validationf("missing date")
	}
	date, err := timeutil.Parse(req.Date)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	if _, err := s.store.UserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := timeutil.Now()
	l := &model.DailyLog{
		UserID:       req.UserID,
		Content:      req.Content,
		Date:         date,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.store.CreateLog(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListForDay returns the user's logs for the selected YYYY-MM-DD day.
func (s *LogService) ListForDay(ctx context.Context, userID uint, selector string) ([]model.DailyLog, error) {
	day, err := timeutil.ParseSelector(selector)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	from, to := timeutil.DayBounds(day)
	return s.store.LogsForDay(ctx, userID, from, to)
}

func (s *LogService) Get(ctx context.Context, id, userID uint) (*model.DailyLog, error) {
	return s.store.LogByID(ctx, id, userID)
}

func (s *LogService) Update(ctx context.Context, id uint, req model.UpdateLogRequest) (*model.DailyLog, error) {
	var p store.Patch
	store.SetIf(&p, "content", req.Content)
	if req.Date != nil {
		date, err := timeutil.Parse(*req.Date)
		if err != nil {
			return nil, apperr.Validationf("%v", err)
		}
		p.Set("date", date)
	}
	if p.Empty() {
		return nil, apperr.Validationf("no fields to update")
	}
	if _, err := s.store.LogByID(ctx, id, req.UserID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateLog(ctx, id, req.UserID, p, timeutil.Now()); err != nil {
		return nil, err
	}
	return s.store.LogByID(ctx, id, req.UserID)
}

func (s *LogService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.store.LogByID(ctx, id, userID); err != nil {
		return err
	}
	return s.store.DeleteLog(ctx, id, userID)
}
