package dispatcher

import (
	"context"

	"specialist-router/internal/agent"
	"specialist-router/internal/model"
)

// Call is one specialist invocation.
type Call struct {
	Agent     agent.Descriptor
	Message   string
	UserID    string
	SessionID string
	Decision  model.RoutingDecision
}

// Strategy is one way of getting a reply from a specialist.
type Strategy interface {
	Name() string
	Invoke(ctx context.Context, call Call) (model.InvocationResult, error)
}

// runtimeRequest is the body sent to a hosted specialist runtime.
type runtimeRequest struct {
	Prompt    string `json:"prompt"`
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	AgentType string `json:"agentType"`
}

// backendRequest is the body sent to a dedicated document/knowledge backend.
type backendRequest struct {
	Message        string         `json:"message"`
	UserID         string         `json:"userId"`
	SessionID      string         `json:"sessionId"`
	RoutedFrom     string         `json:"routedFrom"`
	AgentType      string         `json:"agentType"`
	SubIntent      string         `json:"subIntent,omitempty"`
	Filename       string         `json:"filename,omitempty"`
	Classification classification `json:"classification"`
}

type classification struct {
	Reason string         `json:"reason"`
	Scores map[string]int `json:"scores,omitempty"`
}

func classificationOf(d model.RoutingDecision) classification {
	c := classification{Reason: string(d.Reason)}
	if len(d.Scores) > 0 {
		c.Scores = make(map[string]int, len(d.Scores))
		for t, s := range d.Scores {
			c.Scores[string(t)] = s
		}
	}
	return c
}
