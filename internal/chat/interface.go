package chat

import (
	"context"

	"specialist-router/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat routes one message to a specialist and records the turn.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// Route returns the routing decision for a message without invoking anyone.
	Route(ctx context.Context, input ChatInput) (model.RoutingDecision, error)
}
