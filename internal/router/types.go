package router

import "specialist-router/internal/model"

// Input is what the router needs to pick a specialist.
type Input struct {
	Message   string
	SessionID string
	AgentHint model.AgentType // optional caller hint
}

// Scores maps each specialist to its keyword hit count.
type Scores map[model.AgentType]int
