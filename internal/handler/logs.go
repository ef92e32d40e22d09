package handler

import (
	"net/http"

	"dayplan/internal/model"
	"dayplan/internal/service"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	svc *service.LogService
}

func NewLogHandler(svc *service.LogService) *LogHandler { return &LogHandler{svc: svc} }

// POST /logs
func (h *LogHandler) Create(c *gin.Context) {
	var req model.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	l, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

// GET /logs?user_id=&selected_date=YYYY-MM-DD
func (h *LogHandler) List(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	sel, ok := querySelectedDate(c)
	if !ok {
		return
	}
	logs, err := h.svc.ListForDay(c.Request.Context(), userID, sel)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(logs) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// GET /logs/:id?user_id=
func (h *LogHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	l, err := h.svc.Get(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// PUT /logs/:id
func (h *LogHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}
	l, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

// DELETE /logs/:id?user_id=
func (h *LogHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "log entry deleted"})
}
