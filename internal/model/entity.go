package model

import "time"

// Todo status values. "Past Due" keeps the space used by the stored enum.
const (
	TodoPending   = "Pending"
	TodoCompleted = "Completed"
	TodoPastDue   = "Past Due"
)

// Todo priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// Calendar event status values.
const (
	EventUpcoming = "Upcoming"
	EventCurrent  = "Current"
	EventPast     = "Past"
)

func ValidTodoStatus(s string) bool {
	return s == TodoPending || s == TodoCompleted || s == TodoPastDue
}

func ValidPriority(s string) bool {
	return s == PriorityLow || s == PriorityMedium || s == PriorityHigh
}

func ValidEventStatus(s string) bool {
	return s == EventUpcoming || s == EventCurrent || s == EventPast
}

type User struct {
	ID        uint      `gorm:"column:user_id;primaryKey" json:"user_id"`
	Username  string    `gorm:"uniqueIndex;size:50" json:"username"`
	Password  string    `gorm:"size:255" json:"-"`
	Email     string    `gorm:"size:100" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

type DailyLog struct {
	ID           uint      `gorm:"column:log_id;primaryKey" json:"log_id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Content      string    `gorm:"type:text" json:"content"`
	Date         time.Time `json:"date"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type TodoItem struct {
	ID           uint      `gorm:"column:todo_id;primaryKey" json:"todo_id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Title        string    `gorm:"size:100" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	DueDate      time.Time `json:"due_date"`
	Priority     string    `gorm:"size:10" json:"priority"`
	Status       string    `gorm:"size:10" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

type CalendarEvent struct {
	ID           uint      `gorm:"column:event_id;primaryKey" json:"event_id"`
	UserID       uint      `gorm:"index" json:"user_id"`
	Title        string    `gorm:"size:100" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `gorm:"size:10" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}

func (User) TableName() string          { return "users" }
func (DailyLog) TableName() string      { return "daily_logs" }
func (TodoItem) TableName() string      { return "todo_list" }
func (CalendarEvent) TableName() string { return "calendar_events" }
