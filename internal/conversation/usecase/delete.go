package usecase

import (
	"context"
	"fmt"

	"specialist-router/internal/conversation"
	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

// DeleteSession removes the user's messages of one session.
func (uc *implUseCase) DeleteSession(ctx context.Context, input conversation.DeleteSessionInput) (conversation.DeleteSessionOutput, error) {
	if model.IsBlank(input.SessionID) {
		return conversation.DeleteSessionOutput{}, conversation.ErrSessionIDRequired
	}
	if err := validUserID(input.UserID); err != nil {
		return conversation.DeleteSessionOutput{}, err
	}

	n, err := uc.repo.DeleteSession(ctx, repository.DeleteSessionOptions{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.conversation.usecase.DeleteSession: %v", err)
		return conversation.DeleteSessionOutput{}, fmt.Errorf("delete session: %w", err)
	}

	uc.l.Infof(ctx, "internal.conversation.usecase.DeleteSession: removed %d messages from %s", n, input.SessionID)
	return conversation.DeleteSessionOutput{SessionID: input.SessionID, Deleted: n}, nil
}
