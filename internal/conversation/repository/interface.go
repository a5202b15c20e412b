package repository

import (
	"context"
	"time"

	"specialist-router/internal/model"
)

// Repository is the composed interface for the conversation store.
type Repository interface {
	MessageRepository
}

// MessageRepository is the append log of conversation turns.
type MessageRepository interface {
	// PutMessage appends one message. Writing an existing MessageID is a no-op.
	PutMessage(ctx context.Context, msg model.Message) error
	QueryBySession(ctx context.Context, opt QueryBySessionOptions) ([]model.Message, error)
	QueryByUser(ctx context.Context, opt QueryByUserOptions) ([]model.Message, error)
	DeleteSession(ctx context.Context, opt DeleteSessionOptions) (int, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
