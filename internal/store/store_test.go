package store

import (
	"context"
	"testing"
	"time"

	"dayplan/internal/apperr"
	"dayplan/internal/model"
	"dayplan/internal/timeutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	s := New(db)
	require.NoError(t, s.AutoMigrate())
	return s
}

func seedUser(t *testing.T, s *Store, username string) *model.User {
	t.Helper()
	now := timeutil.Now()
	u := &model.User{Username: username, Password: "x", Email: username + "@example.com", CreatedAt: now, LastLogin: now}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func seedTodo(t *testing.T, s *Store, userID uint, due time.Time, status string) *model.TodoItem {
	t.Helper()
	now := timeutil.Now()
	td := &model.TodoItem{
		UserID: userID, Title: "t", Description: "d", DueDate: due,
		Priority: model.PriorityMedium, Status: status,
		CreatedAt: now, LastModified: now,
	}
	require.NoError(t, s.CreateTodo(context.Background(), td))
	return td
}

func seedEvent(t *testing.T, s *Store, userID uint, start, end time.Time, status string) *model.CalendarEvent {
	t.Helper()
	now := timeutil.Now()
	ev := &model.CalendarEvent{
		UserID: userID, Title: "e", Description: "d", StartDate: start, EndDate: end,
		Status: status, CreatedAt: now, LastModified: now,
	}
	require.NoError(t, s.CreateEvent(context.Background(), ev))
	return ev
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "alice")

	now := timeutil.Now()
	err := s.CreateUser(context.Background(), &model.User{Username: "alice", Password: "y", Email: "other@example.com", CreatedAt: now, LastLogin: now})
	assert.ErrorIs(t, err, apperr.ErrConflict)
}

func TestTouchLastLogin(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")

	later := timeutil.Now().Add(time.Hour)
	require.NoError(t, s.TouchLastLogin(context.Background(), u.ID, later))

	got, err := s.UserByID(context.Background(), u.ID)
	require.NoError(t, err)
	assert.True(t, got.LastLogin.Equal(later))

	assert.ErrorIs(t, s.TouchLastLogin(context.Background(), 9999, later), apperr.ErrNotFound)
}

func TestOwnerScopedLookup(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	td := seedTodo(t, s, alice.ID, timeutil.Now().Add(time.Hour), model.TodoPending)

	got, err := s.TodoByID(context.Background(), td.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, td.ID, got.ID)

	// foreign owner and missing id must be indistinguishable
	_, errForeign := s.TodoByID(context.Background(), td.ID, bob.ID)
	_, errMissing := s.TodoByID(context.Background(), 9999, alice.ID)
	assert.ErrorIs(t, errForeign, apperr.ErrNotFound)
	assert.ErrorIs(t, errMissing, apperr.ErrNotFound)
	assert.Equal(t, errForeign, errMissing)
}

func TestPartialUpdateLeavesOtherFields(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")

	created := timeutil.Now().Add(-time.Hour)
	l := &model.DailyLog{UserID: u.ID, Content: "original", Date: created, CreatedAt: created, LastModified: created}
	require.NoError(t, s.CreateLog(context.Background(), l))

	var p Patch
	p.Set("content", "patched")
	now := timeutil.Now()
	require.NoError(t, s.UpdateLog(context.Background(), l.ID, u.ID, p, now))

	got, err := s.LogByID(context.Background(), l.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "patched", got.Content)
	assert.True(t, got.Date.Equal(created), "date must be untouched")
	assert.True(t, got.LastModified.Equal(now), "last_modified must be stamped")
}

func TestUpdateScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	td := seedTodo(t, s, alice.ID, timeutil.Now().Add(time.Hour), model.TodoPending)

	var p Patch
	p.Set("title", "hijacked")
	err := s.UpdateTodo(context.Background(), td.ID, bob.ID, p, timeutil.Now())
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := s.TodoByID(context.Background(), td.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
}

func TestDeleteScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	alice := seedUser(t, s, "alice")
	bob := seedUser(t, s, "bob")
	td := seedTodo(t, s, alice.ID, timeutil.Now().Add(time.Hour), model.TodoPending)

	assert.ErrorIs(t, s.DeleteTodo(context.Background(), td.ID, bob.ID), apperr.ErrNotFound)
	require.NoError(t, s.DeleteTodo(context.Background(), td.ID, alice.ID))

	_, err := s.TodoByID(context.Background(), td.ID, alice.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLogsForDay(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")

	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	for _, d := range []time.Time{
		day.Add(9 * time.Hour),
		day.Add(23*time.Hour + 59*time.Minute),
		day.AddDate(0, 0, 1),  // next day, excluded
		day.Add(-time.Second), // previous day, excluded
	} {
		l := &model.DailyLog{UserID: u.ID, Content: "c", Date: d, CreatedAt: d, LastModified: d}
		require.NoError(t, s.CreateLog(context.Background(), l))
	}

	from, to := timeutil.DayBounds(day)
	logs, err := s.LogsForDay(context.Background(), u.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
}

func TestTodosForMonth(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")

	seedTodo(t, s, u.ID, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), model.TodoPending)
	seedTodo(t, s, u.ID, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), model.TodoPending)
	seedTodo(t, s, u.ID, time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), model.TodoPending)
	seedTodo(t, s, u.ID, time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC), model.TodoPending)

	sel, err := timeutil.ParseSelector("2024-02-15")
	require.NoError(t, err)
	from, to := timeutil.MonthBounds(sel)
	todos, err := s.TodosForMonth(context.Background(), u.ID, from, to)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestEventsOverlappingLeapMonth(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")

	// spans the whole of February
	in1 := seedEvent(t, s, u.ID,
		time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), model.EventUpcoming)
	// inside February
	in2 := seedEvent(t, s, u.ID,
		time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 10, 10, 0, 0, 0, time.UTC), model.EventUpcoming)
	// ends just before February
	seedEvent(t, s, u.ID,
		time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC), model.EventUpcoming)
	// starts just after February (leap year: Feb 29 exists)
	seedEvent(t, s, u.ID,
		time.Date(2024, 3, 1, 0, 0, 1, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), model.EventUpcoming)

	sel, err := timeutil.ParseSelector("2024-02-01")
	require.NoError(t, err)
	from, to := timeutil.MonthBounds(sel)
	events, err := s.EventsOverlapping(context.Background(), u.ID, from, to)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, []uint{in1.ID, in2.ID}, []uint{events[0].ID, events[1].ID})
}

func TestMarkOverdueTodos(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")
	now := timeutil.Now()

	overdue := seedTodo(t, s, u.ID, now.Add(-24*time.Hour), model.TodoPending)
	future := seedTodo(t, s, u.ID, now.Add(24*time.Hour), model.TodoPending)
	done := seedTodo(t, s, u.ID, now.Add(-24*time.Hour), model.TodoCompleted)

	n, err := s.MarkOverdueTodos(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := s.TodoByID(context.Background(), overdue.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TodoPastDue, got.Status)
	assert.True(t, got.LastModified.Equal(now))

	got, err = s.TodoByID(context.Background(), future.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TodoPending, got.Status)

	got, err = s.TodoByID(context.Background(), done.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.TodoCompleted, got.Status)

	// second run with no time change is a no-op
	n, err = s.MarkOverdueTodos(context.Background(), now)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEventTransitions(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")
	now := timeutil.Now()

	// started yesterday, ends tomorrow: rule 2 fires, rule 3 must not
	running := seedEvent(t, s, u.ID, now.Add(-24*time.Hour), now.Add(24*time.Hour), model.EventUpcoming)
	// ended yesterday, already Current: rule 3 fires
	ended := seedEvent(t, s, u.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), model.EventCurrent)
	// starts tomorrow: untouched
	future := seedEvent(t, s, u.ID, now.Add(24*time.Hour), now.Add(48*time.Hour), model.EventUpcoming)

	n, err := s.StartDueEvents(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = s.ExpireEndedEvents(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	for _, tc := range []struct {
		id   uint
		want string
	}{
		{running.ID, model.EventCurrent},
		{ended.ID, model.EventPast},
		{future.ID, model.EventUpcoming},
	} {
		got, err := s.EventByID(context.Background(), tc.id, u.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Status)
	}
}

func TestSweepSelfHealsAcrossTicks(t *testing.T) {
	s := newTestStore(t)
	u := seedUser(t, s, "alice")
	now := timeutil.Now()

	// event whose whole span is already in the past chains Upcoming →
	// Current on one tick and Current → Past on the next
	ev := seedEvent(t, s, u.ID, now.Add(-48*time.Hour), now.Add(-24*time.Hour), model.EventUpcoming)

	_, err := s.StartDueEvents(context.Background(), now)
	require.NoError(t, err)
	_, err = s.ExpireEndedEvents(context.Background(), now)
	require.NoError(t, err)

	got, err := s.EventByID(context.Background(), ev.ID, u.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EventPast, got.Status)
}

func TestPatch(t *testing.T) {
	var p Patch
	assert.True(t, p.Empty())

	title := "x"
	SetIf(&p, "title", &title)
	SetIf(&p, "description", (*string)(nil))
	assert.False(t, p.Empty())

	now := timeutil.Now()
	ch := p.changes(now)
	assert.Equal(t, map[string]any{"title": "x", "last_modified": now}, ch)

	var hasNoKeys Patch
	ch = hasNoKeys.changes(now)
	// even an (invalid, caller-rejected) empty patch would stamp last_modified
	assert.Equal(t, map[string]any{"last_modified": now}, ch)
}
