package service

import (
	"context"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
	"dayplan/internal/store"
	"dayplan/internal/timeutil"
)

type EventStore interface {
	UserByID(ctx context.Context, id uint) (*model.User, error)
	CreateEvent(ctx context.Context, e *model.CalendarEvent) error
	EventByID(ctx context.Context, id, userID uint) (*model.CalendarEvent, error)
	EventsOverlapping(ctx context.Context, userID uint, from, to time.Time) ([]model.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id, userID uint, p store.Patch, now time.Time) error
	DeleteEvent(ctx context.Context, id, userID uint) error
}

type EventService struct {
	store EventStore
}

func NewEventService(st EventStore) *EventService { return &EventService{store: st} }

func (s *EventService) Create(ctx context.Context, req model.CreateEventRequest) (*model.CalendarEvent, error) {
	switch {
	case req.UserID == 0:
		return nil, apperr.Validationf("missing user_id")
	case req.Title == "":
		return nil, apperr.Validationf("missing title")
	case req.Description == "":
		return nil, apperr.Validationf("missing description")
	case req.StartDate == "":
		return nil, apperr.Validationf("missing start_date")
	case req.EndDate == "":
		return nil, apperr.Validationf("missing end_date")
	case req.Status == "":
		return nil, apperr.Validationf("missing status")
	}
	if !model.ValidEventStatus(req.Status) {
		return nil, apperr.Validationf("invalid status %q", req.Status)
	}
	start, err := timeutil.Parse(req.StartDate)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	end, err := timeutil.Parse(req.EndDate)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	if _, err := s.store.UserByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	now := timeutil.Now()
	e := &model.CalendarEvent{
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
		Status:       req.Status,
		CreatedAt:    now,
		LastModified: now,
	}
	if err := s.store.CreateEvent(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListForMonth returns the user's events overlapping the month of the
// selected day.
func (s *EventService) ListForMonth(ctx context.Context, userID uint, selector string) ([]model.CalendarEvent, error) {
	day, err := timeutil.ParseSelector(selector)
	if err != nil {
		return nil, apperr.Validationf("%v", err)
	}
	from, to := timeutil.MonthBounds(day)
	return s.store.EventsOverlapping(ctx, userID, from, to)
}

func (s *EventService) Get(ctx context.Context, id, userID uint) (*model.CalendarEvent, error) {
	return s.store.EventByID(ctx, id, userID)
}

func (s *EventService) Update(ctx context.Context, id uint, req model.UpdateEventRequest) (*model.CalendarEvent, error) {
	var p store.Patch
	store.SetIf(&p, "title", req.Title)
	store.SetIf(&p, "description", req.Description)
	if req.StartDate != nil {
		start, err := timeutil.Parse(*req.StartDate)
		if err != nil {
			return nil, apperr.Validationf("%v", err)
		}
		p.Set("start_date", start)
	}
	if req.EndDate != nil {
		end, err := timeutil.Parse(*req.EndDate)
		if err != nil {
			return nil, apperr.Validationf("%v", err)
		}
		p.Set("end_date", end)
	}
	if req.Status != nil {
		if !model.ValidEventStatus(*req.Status) {
			return nil, apperr.Validationf("invalid status %q", *req.Status)
		}
		p.Set("status", *req.Status)
	}
	if p.Empty() {
		return nil, apperr.Validationf("no fields to update")
	}
	if _, err := s.store.EventByID(ctx, id, req.UserID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateEvent(ctx, id, req.UserID, p, timeutil.Now()); err != nil {
		return nil, err
	}
	return s.store.EventByID(ctx, id, req.UserID)
}

func (s *EventService) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.store.EventByID(ctx, id, userID); err != nil {
		return err
	}
	return s.store.DeleteEvent(ctx, id, userID)
}
