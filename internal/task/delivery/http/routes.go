package http

import (
	"github.com/gin-gonic/gin"

	"aufgabe/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// The parse preview and suggestion reads share the task group's
// middleware chain.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	tasks.Use(mw.Auth(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/export", h.Export)
		tasks.POST("/import", h.Import)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
		tasks.POST("/:id/postpone", h.Postpone)
	}

	rg.POST("/parse", mw.Auth(), mw.RateLimit(), h.Parse)
	rg.GET("/suggestions", mw.Auth(), h.Suggestions)
}
