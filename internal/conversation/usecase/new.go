package usecase

import (
	"time"

	"specialist-router/internal/conversation"
	"specialist-router/internal/conversation/repository"
	"specialist-router/pkg/log"
)

// implUseCase is the private implementation of conversation.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
	now  func() time.Time
}

var _ conversation.UseCase = (*implUseCase)(nil)

// New creates a new conversation UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
		now:  time.Now,
	}
}
