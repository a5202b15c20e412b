package usecase

import (
	"strings"

	"specialist-router/internal/conversation"
	"specialist-router/internal/model"
)

func validUserID(userID string) error {
	if model.IsBlank(userID) || strings.TrimSpace(userID) == model.AnonymousUserID {
		return conversation.ErrUserIDRequired
	}
	return nil
}

func preview(content string) string {
	r := []rune(content)
	if len(r) <= previewMaxChars {
		return content
	}
	return string(r[:previewMaxChars]) + "..."
}

func lastActivity(ts string) string {
	t, err := model.ParseTimestamp(ts)
	if err != nil {
		return ts
	}
	return t.UTC().Format(activityLayout)
}
