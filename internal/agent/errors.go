package agent

import "errors"

var (
	ErrEmptyCatalog     = errors.New("agent catalog is empty")
	ErrDuplicateAgent   = errors.New("duplicate agent type in catalog")
	ErrUnknownDefault   = errors.New("default agent is not in catalog")
	ErrInvalidFamily    = errors.New("invalid agent family")
	ErrMissingAgentType = errors.New("agent type is required")
)
