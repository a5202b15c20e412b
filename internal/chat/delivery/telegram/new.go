package telegram

import (
	"github.com/gin-gonic/gin"

	"specialist-router/internal/chat"
	"specialist-router/internal/conversation"
	pkgLog "specialist-router/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender is the part of the bot the handler replies with.
type Sender interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithMode(chatID int64, text string, parseMode string) error
}

// New creates a new Telegram delivery handler. conv may be nil, which disables /reset.
func New(l pkgLog.Logger, uc chat.UseCase, conv conversation.UseCase, bot Sender) Handler {
	return &handler{
		l:    l,
		uc:   uc,
		conv: conv,
		bot:  bot,
		wait: func(f func()) { go f() },
	}
}
