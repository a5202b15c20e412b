package dispatcher

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"specialist-router/internal/agent/docqa"
	"specialist-router/internal/agent/normalize"
	"specialist-router/internal/model"
	"specialist-router/pkg/log"
)

// DirectStrategy calls a dedicated document or knowledge backend.
type DirectStrategy struct {
	client     Doer
	timeout    time.Duration
	routedFrom string
	l          log.Logger
}

// NewDirectStrategy creates a DirectStrategy. A nil client uses http.DefaultClient.
func NewDirectStrategy(client Doer, timeout time.Duration, routedFrom string, l log.Logger) *DirectStrategy {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultBackendTimeout
	}
	if routedFrom == "" {
		routedFrom = DefaultRoutedFrom
	}
	return &DirectStrategy{client: client, timeout: timeout, routedFrom: routedFrom, l: l}
}

func (s *DirectStrategy) Name() string { return string(model.SourceDedicatedBackend) }

// Invoke sends the message to the backend. Document questions are rewritten first and a
// recipient answer naming an organisation triggers exactly one refinement call.
func (s *DirectStrategy) Invoke(ctx context.Context, call Call) (model.InvocationResult, error) {
	if call.Agent.Runtime == "" {
		return model.InvocationResult{}, ErrNoBackendURL
	}

	req := backendRequest{
		Message:        call.Message,
		UserID:         call.UserID,
		SessionID:      call.SessionID,
		RoutedFrom:     s.routedFrom,
		AgentType:      string(call.Agent.Type),
		Classification: classificationOf(call.Decision),
	}

	var analysis docqa.Analysis
	isDocument := call.Agent.Type == model.AgentDocument
	if isDocument {
		analysis = docqa.Analyze(call.Message)
		req.Message = analysis.Message
		req.SubIntent = string(analysis.SubIntent)
		req.Filename = analysis.Filename
	}

	first, err := s.post(ctx, call, req)
	if err != nil {
		return model.InvocationResult{}, err
	}

	if !isDocument || !docqa.NeedsRefinement(analysis.SubIntent, first.Text) {
		return first, nil
	}

	s.l.Infof(ctx, "internal.agent.dispatcher.DirectStrategy.Invoke: refining organisation answer for session %s", call.SessionID)

	req.Message = docqa.RefinementPrompt(call.Message)
	second, err := s.post(ctx, call, req)
	if err != nil {
		s.l.Warnf(ctx, "internal.agent.dispatcher.DirectStrategy.Invoke: refinement failed, keeping first answer: %v", err)
		return first, nil
	}

	return mergeRefinement(first, second), nil
}

func (s *DirectStrategy) post(ctx context.Context, call Call, req backendRequest) (model.InvocationResult, error) {
	body, err := postJSON(ctx, s.client, call.Agent.Runtime, s.timeout, req)
	if err != nil {
		return model.InvocationResult{}, fmt.Errorf("backend %s: %w", call.Agent.Type, err)
	}

	p := normalize.Parse(body)
	if p.Shape != normalize.ShapeResponseField {
		return model.InvocationResult{}, fmt.Errorf("backend %s: %w", call.Agent.Type, ErrMissingResponseField)
	}

	return model.InvocationResult{
		Text:   p.Text,
		Source: model.SourceDedicatedBackend,
		Fields: p.Fields,
	}, nil
}

// mergeRefinement prefers a non-blank second answer, "Unknown" included; its fields
// win on key collisions.
func mergeRefinement(first, second model.InvocationResult) model.InvocationResult {
	if model.IsBlank(second.Text) {
		return first
	}

	merged := make(map[string]any, len(first.Fields)+len(second.Fields))
	for k, v := range first.Fields {
		merged[k] = v
	}
	for k, v := range second.Fields {
		merged[k] = v
	}
	if len(merged) == 0 {
		merged = nil
	}

	return model.InvocationResult{
		Text:   second.Text,
		Source: model.SourceDedicatedBackend,
		Fields: merged,
	}
}
