package usecase

import (
	"context"
	"time"

	"specialist-router/internal/agent"
	"specialist-router/internal/agent/dispatcher"
	"specialist-router/internal/chat"
	"specialist-router/internal/model"
	"specialist-router/internal/router"
	"specialist-router/pkg/log"
)

// Dispatcher invokes the chosen specialist.
type Dispatcher interface {
	Dispatch(ctx context.Context, call dispatcher.Call) model.InvocationResult
}

// MessageWriter appends conversation turns.
type MessageWriter interface {
	PutMessage(ctx context.Context, msg model.Message) error
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	agents     *agent.Registry
	router     router.Router
	dispatcher Dispatcher
	store      MessageWriter
	l          log.Logger
	now        func() time.Time
	newID      func() string
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation. store may be nil to disable persistence.
func New(agents *agent.Registry, r router.Router, d Dispatcher, store MessageWriter, l log.Logger) *implUseCase {
	return &implUseCase{
		agents:     agents,
		router:     r,
		dispatcher: d,
		store:      store,
		l:          l,
		now:        time.Now,
		newID:      newSessionID,
	}
}
