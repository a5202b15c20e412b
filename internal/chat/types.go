package chat

import "specialist-router/internal/model"

// SessionPrefix starts every generated session id.
const SessionPrefix = "session-"

// --- UseCase Inputs ---

type ChatInput struct {
	Message   string
	UserID    string // "anonymous" when empty
	SessionID string // generated when empty
	AgentHint model.AgentType
}

// --- UseCase Outputs ---

type ChatOutput struct {
	Response  string
	Agent     model.AgentType
	SessionID string
	UserID    string
	Timestamp string
	Source    model.InvocationSource
	Reason    model.RoutingReason
	Fields    map[string]any // backend extras passed through to the caller
}
