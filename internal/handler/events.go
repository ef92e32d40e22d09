package handler

import (
	"net/http"

	"dayplan/internal/model"
	"dayplan/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	svc *service.EventService
}

func NewEventHandler(svc *service.EventService) *EventHandler { return &EventHandler{svc: svc} }

// POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req model.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	e, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// GET /events?user_id=&selected_date=YYYY-MM-DD (events overlapping that month)
func (h *EventHandler) List(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	sel, ok := querySelectedDate(c)
	if !ok {
		return
	}
	events, err := h.svc.ListForMonth(c.Request.Context(), userID, sel)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(events) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, events)
}

// GET /events/:id?user_id=
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}
	e, err := h.svc.Get(c.Request.Context(), id, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req model.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing user_id"})
		return
	}
	e, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// DELETE /events/:id?user_id=
func (h *EventHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "calendar event deleted"})
}
