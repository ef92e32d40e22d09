package model

type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Email           string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateLogRequest struct {
	UserID  uint   `json:"user_id"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// UpdateLogRequest uses pointers so an absent key and an explicit empty
// value can be told apart; only keys present in the payload are patched.
type UpdateLogRequest struct {
	UserID  uint    `json:"user_id"`
	Content *string `json:"content"`
	Date    *string `json:"date"`
}

type CreateTodoRequest struct {
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type UpdateTodoRequest struct {
	UserID      uint    `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

type CreateEventRequest struct {
	UserID      uint   `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

type UpdateEventRequest struct {
	UserID      uint    `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Status      *string `json:"status"`
}
