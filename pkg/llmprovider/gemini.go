package llmprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	ProviderGemini     = "gemini"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// genaiModels is the part of *genai.Models the adapter calls.
type genaiModels interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider adapts the Google GenAI SDK to Provider.
type GeminiProvider struct {
	models  genaiModels
	model   string
	timeout time.Duration
}

// NewGeminiProvider creates a Gemini provider backed by genai.
func NewGeminiProvider(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &GeminiProvider{models: client.Models, model: model, timeout: timeout}, nil
}

// GenerateContent implements Provider interface
func (p *GeminiProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: ProviderGemini, Err: ErrInvalidRequest}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	contents := make([]*genai.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := genai.Role(genai.RoleUser)
		if m.Role == RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(m.Text, role))
	}

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.Temperature > 0 {
		cfg.Temperature = genai.Ptr(float32(req.Temperature))
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = int32(req.MaxTokens)
	}

	resp, err := p.models.GenerateContent(ctx, p.model, contents, cfg)
	if err != nil {
		return nil, &ProviderError{Provider: ProviderGemini, Err: err}
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return nil, &ProviderError{Provider: ProviderGemini, Err: ErrEmptyResponse}
	}

	out := &Response{Text: text, ProviderName: ProviderGemini, ModelName: p.model, Usage: &Usage{}}
	if u := resp.UsageMetadata; u != nil {
		out.Usage = &Usage{
			InputTokens:  int(u.PromptTokenCount),
			OutputTokens: int(u.CandidatesTokenCount),
			TotalTokens:  int(u.TotalTokenCount),
		}
	}
	return out, nil
}

// Name returns provider name
func (p *GeminiProvider) Name() string {
	return ProviderGemini
}

// Model returns model name
func (p *GeminiProvider) Model() string {
	return p.model
}
