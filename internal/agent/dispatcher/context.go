package dispatcher

import (
	"context"
	"strings"

	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
	"specialist-router/pkg/log"
)

// HistoryReader is the slice of the conversation store the context builder reads.
type HistoryReader interface {
	QueryBySession(ctx context.Context, opt repository.QueryBySessionOptions) ([]model.Message, error)
}

// ContextBuilder renders recent session history as a prompt transcript.
type ContextBuilder struct {
	history HistoryReader
	l       log.Logger
}

// NewContextBuilder creates a ContextBuilder. history may be nil.
func NewContextBuilder(history HistoryReader, l log.Logger) *ContextBuilder {
	return &ContextBuilder{history: history, l: l}
}

// Build returns the transcript for message. Without history the message is returned verbatim.
func (b *ContextBuilder) Build(ctx context.Context, sessionID, userID, message string) string {
	if b.history == nil || sessionID == "" {
		return message
	}

	msgs, err := b.history.QueryBySession(ctx, repository.QueryBySessionOptions{
		SessionID:       sessionID,
		UserID:          userID,
		Limit:           ContextFetchLimit,
		MostRecentFirst: true,
	})
	if err != nil {
		b.l.Warnf(ctx, "internal.agent.dispatcher.ContextBuilder.Build: history unavailable: %v", err)
		return message
	}

	return Render(msgs, message)
}

// Render formats msgs (most recent first) and the current message.
func Render(recentFirst []model.Message, message string) string {
	if len(recentFirst) == 0 {
		return message
	}

	chrono := make([]model.Message, len(recentFirst))
	for i, m := range recentFirst {
		chrono[len(recentFirst)-1-i] = m
	}
	if len(chrono) > ContextKeepMessages {
		chrono = chrono[len(chrono)-ContextKeepMessages:]
	}

	var sb strings.Builder
	sb.WriteString("Previous conversation:")
	for _, m := range chrono {
		speaker := "Assistant"
		if m.Role == model.RoleUser {
			speaker = "User"
		}
		sb.WriteString("\n")
		sb.WriteString(speaker)
		sb.WriteString(": ")
		sb.WriteString(truncate(m.Content, ContextMaxChars))
	}
	sb.WriteString("\n\nCurrent message:\nUser: ")
	sb.WriteString(message)
	return sb.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
