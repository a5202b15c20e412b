package dispatcher

import (
	"context"
	"fmt"

	"specialist-router/internal/model"
	"specialist-router/pkg/llmprovider"
)

// FoundationModelStrategy answers with the agent prompt and recent history on a foundation model.
type FoundationModelStrategy struct {
	llm     llmprovider.Generator
	context *ContextBuilder
}

// NewFoundationModelStrategy creates a FoundationModelStrategy.
func NewFoundationModelStrategy(llm llmprovider.Generator, cb *ContextBuilder) *FoundationModelStrategy {
	return &FoundationModelStrategy{llm: llm, context: cb}
}

func (s *FoundationModelStrategy) Name() string { return string(model.SourceFoundationModelFallback) }

func (s *FoundationModelStrategy) Invoke(ctx context.Context, call Call) (model.InvocationResult, error) {
	if s.llm == nil {
		return model.InvocationResult{}, ErrNoGenerator
	}

	transcript := call.Message
	if s.context != nil {
		transcript = s.context.Build(ctx, call.SessionID, call.UserID, call.Message)
	}

	req := llmprovider.UserText(call.Agent.Prompt, transcript)
	req.Temperature = fmTemperature
	req.MaxTokens = fmMaxTokens

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return model.InvocationResult{}, fmt.Errorf("foundation model %s: %w", call.Agent.Type, err)
	}
	if resp == nil || model.IsBlank(resp.Text) {
		return model.InvocationResult{}, fmt.Errorf("foundation model %s: %w", call.Agent.Type, llmprovider.ErrEmptyResponse)
	}

	return model.InvocationResult{
		Text:   resp.Text,
		Source: model.SourceFoundationModelFallback,
	}, nil
}
