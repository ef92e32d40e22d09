package handler

import (
	"net/http"

	"dayplan/internal/model"
	"dayplan/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler { return &TodoHandler{svc: svc} }

// POST /todos
func (h *TodoHandler) Create(c *gin.Context) {
	var req model.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GET /todos?user_id=&selected_date=YYYY-MM-DD (month of the selected day)
func (h *TodoHandler) List(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	sel, ok := querySelectedDate(c)
	if !ok {
		return
	}
	todos, err := h.svc.ListForMonth(c.Request.Context(), userID, sel)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(todos) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// GET /todos/:id?user_id=
func (h *TodoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	t, err := h.svc.Get(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// PUT /todos/:id
func (h *TodoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DELETE /todos/:id?user_id=
func (h *TodoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id, userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "todo entry deleted"})
}
