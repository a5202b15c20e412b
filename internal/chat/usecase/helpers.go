package usecase

import (
	"strings"

	"github.com/google/uuid"

	"specialist-router/internal/chat"
	"specialist-router/internal/model"
)

func newSessionID() string {
	return chat.SessionPrefix + uuid.NewString()
}

// normalizeInput validates the message and fills identity defaults.
func (uc *implUseCase) normalizeInput(input chat.ChatInput) (chat.ChatInput, error) {
	if model.IsBlank(input.Message) {
		return input, chat.ErrMessageRequired
	}
	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		input.UserID = model.AnonymousUserID
	}
	input.SessionID = strings.TrimSpace(input.SessionID)
	if input.SessionID == "" {
		input.SessionID = uc.newID()
	}
	input.AgentHint = model.AgentType(strings.TrimSpace(string(input.AgentHint)))
	return input, nil
}
