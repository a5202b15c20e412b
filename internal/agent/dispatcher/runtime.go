package dispatcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"specialist-router/internal/agent/normalize"
	"specialist-router/internal/model"
)

// RuntimeStrategy calls the hosted runtime of a specialist.
type RuntimeStrategy struct {
	enabled    bool
	client     Doer
	timeout    time.Duration
	normalizer *normalize.Normalizer
}

// NewRuntimeStrategy creates a RuntimeStrategy. A nil client uses http.DefaultClient.
func NewRuntimeStrategy(enabled bool, client Doer, timeout time.Duration, n *normalize.Normalizer) *RuntimeStrategy {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultRuntimeTimeout
	}
	return &RuntimeStrategy{enabled: enabled, client: client, timeout: timeout, normalizer: n}
}

func (s *RuntimeStrategy) Name() string { return string(model.SourceSpecialistRuntime) }

// Invoke posts the message to the agent's runtime URL. An unreadable reply counts as a failure.
func (s *RuntimeStrategy) Invoke(ctx context.Context, call Call) (model.InvocationResult, error) {
	if !s.enabled || call.Agent.Runtime == "" {
		return model.InvocationResult{}, ErrRuntimeUnavailable
	}

	body, err := postJSON(ctx, s.client, call.Agent.Runtime, s.timeout, runtimeRequest{
		Prompt:    call.Message,
		Message:   call.Message,
		UserID:    call.UserID,
		SessionID: call.SessionID,
		AgentType: string(call.Agent.Type),
	})
	if err != nil {
		return model.InvocationResult{}, fmt.Errorf("runtime %s: %w", call.Agent.Type, err)
	}

	text, payload := s.normalizer.Text(ctx, body)
	if !payload.Known() {
		return model.InvocationResult{}, fmt.Errorf("runtime %s: %w", call.Agent.Type, ErrUnreadableReply)
	}

	return model.InvocationResult{
		Text:   text,
		Source: model.SourceSpecialistRuntime,
		Fields: payload.Fields,
	}, nil
}
