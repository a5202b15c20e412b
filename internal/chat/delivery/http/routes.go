package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoint under rg. mws run before the handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mws ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mws...), h.Chat)
	rg.POST("/chat", handlers...)
}
