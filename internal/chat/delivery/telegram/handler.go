package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"specialist-router/internal/chat"
	"specialist-router/internal/conversation"
	pkgLog "specialist-router/pkg/log"
	pkgResponse "specialist-router/pkg/response"
	pkgTelegram "specialist-router/pkg/telegram"
)

type handler struct {
	l    pkgLog.Logger
	uc   chat.UseCase
	conv conversation.UseCase
	bot  Sender
	wait func(func()) // runs background work; tests run it inline
}

// HandleWebhook acknowledges the update immediately and routes the message in the background,
// since specialist calls can outlast Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)

	h.wait(func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, processingFail)
		}
	})

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sessionID := fmt.Sprintf("%s%d", sessionPrefix, msg.Chat.ID)
	userID := fmt.Sprintf("%s%d", userPrefix, msg.Chat.ID)
	if msg.From != nil {
		userID = fmt.Sprintf("%s%d", userPrefix, msg.From.ID)
	}

	switch commandOf(text) {
	case cmdStart:
		return h.bot.SendMessageWithMode(msg.Chat.ID, startText, pkgTelegram.ModeMarkdown)
	case cmdHelp:
		return h.bot.SendMessageWithMode(msg.Chat.ID, helpText, pkgTelegram.ModeMarkdown)
	case cmdReset:
		return h.reset(ctx, msg.Chat.ID, sessionID, userID)
	}

	out, err := h.uc.Chat(ctx, chat.ChatInput{
		Message:   text,
		UserID:    userID,
		SessionID: sessionID,
	})
	if err != nil {
		return fmt.Errorf("uc.Chat: %w", err)
	}

	h.l.Infof(ctx, "telegram handler: %s answered chat %d via %s", out.Agent, msg.Chat.ID, out.Source)
	return h.bot.SendMessage(msg.Chat.ID, out.Response)
}

func (h *handler) reset(ctx context.Context, chatID int64, sessionID, userID string) error {
	if h.conv == nil {
		return h.bot.SendMessage(chatID, resetFailed)
	}
	if _, err := h.conv.DeleteSession(ctx, conversation.DeleteSessionInput{SessionID: sessionID, UserID: userID}); err != nil {
		h.l.Warnf(ctx, "telegram handler: reset %s failed: %v", sessionID, err)
		return h.bot.SendMessage(chatID, resetFailed)
	}
	return h.bot.SendMessage(chatID, resetText)
}

// commandOf returns the bot command in text without any @botname suffix, or "".
func commandOf(text string) string {
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	if i := strings.Index(cmd, "@"); i > 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}
