package usecase

import (
	"context"
	"fmt"

	"specialist-router/internal/conversation"
	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

// Transcript returns a session's messages in chronological order, limited to the user's rows.
func (uc *implUseCase) Transcript(ctx context.Context, input conversation.TranscriptInput) (conversation.TranscriptOutput, error) {
	if model.IsBlank(input.SessionID) {
		return conversation.TranscriptOutput{}, conversation.ErrSessionIDRequired
	}
	if err := validUserID(input.UserID); err != nil {
		return conversation.TranscriptOutput{}, err
	}

	msgs, err := uc.repo.QueryBySession(ctx, repository.QueryBySessionOptions{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.Transcript: %v", err)
		return conversation.TranscriptOutput{}, fmt.Errorf("query transcript: %w", err)
	}

	return conversation.TranscriptOutput{SessionID: input.SessionID, Messages: msgs}, nil
}
