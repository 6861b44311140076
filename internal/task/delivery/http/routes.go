package http

import (
	"github.com/gin-gonic/gin"

	"nl-task-parser/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Parsing endpoints are rate limited per client IP.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", mw.RateLimit(), h.Parse)
		tasks.GET("/suggest", mw.RateLimit(), h.Suggest)
		tasks.GET("/languages", h.Languages)
	}
}
