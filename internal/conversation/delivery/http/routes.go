package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the conversation history endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	conv := rg.Group("/conversations")
	{
		conv.GET("/recent", h.RecentChats)
		conv.GET("/:sessionId", h.Transcript)
		conv.DELETE("/:sessionId", h.DeleteSession)
	}
}
