package handler

import (
	"dayplan/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTTP surface onto r.
func RegisterRoutes(r *gin.Engine, authH *AuthHandler, logH *LogHandler, todoH *TodoHandler, eventH *EventHandler) {
	r.POST("/users/register", authH.Register)
	r.POST("/users/login", authH.Login)
	r.GET("/users/me", middleware.JWTAuth(), authH.Me)

	r.POST("/logs", logH.Create)
	r.GET("/logs", logH.List)
	r.GET("/logs/:id", logH.Get)
	r.PUT("/logs/:id", logH.Update)
	r.DELETE("/logs/:id", logH.Delete)

	r.POST("/todos", todoH.Create)
	r.GET("/todos", todoH.List)
	r.GET("/todos/:id", todoH.Get)
	r.PUT("/todos/:id", todoH.Update)
	r.DELETE("/todos/:id", todoH.Delete)

	r.POST("/events", eventH.Create)
	r.GET("/events", eventH.List)
	r.GET("/events/:id", eventH.Get)
	r.PUT("/events/:id", eventH.Update)
	r.DELETE("/events/:id", eventH.Delete)
}
