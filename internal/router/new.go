package router

import (
	"context"

	"specialist-router/internal/agent"
	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
	"specialist-router/pkg/log"
)

// Router picks the specialist for a message.
type Router interface {
	Decide(ctx context.Context, in Input) model.RoutingDecision
}

// HistoryReader is the slice of the conversation store the router reads.
type HistoryReader interface {
	QueryBySession(ctx context.Context, opt repository.QueryBySessionOptions) ([]model.Message, error)
}

// KeywordRouter routes with hint arbitration, session continuity and keyword scoring.
type KeywordRouter struct {
	agents  *agent.Registry
	history HistoryReader
	l       log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter. history may be nil, in which case continuity never applies.
func New(agents *agent.Registry, history HistoryReader, l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		agents:  agents,
		history: history,
		l:       l,
	}
}
