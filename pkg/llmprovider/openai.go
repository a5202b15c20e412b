package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openaiapi "github.com/sashabaranov/go-openai"
)

const (
	ProviderOpenAI   = "openai"
	ProviderDeepSeek = "deepseek"
	ProviderQwen     = "qwen"
)

// Default endpoints for OpenAI-compatible vendors.
var defaultBaseURLs = map[string]string{
	ProviderDeepSeek: "https://api.deepseek.com/v1",
	ProviderQwen:     "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
}

// chatCompleter is the part of *openai.Client the adapter calls.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openaiapi.ChatCompletionRequest) (openaiapi.ChatCompletionResponse, error)
}

// OpenAICompatProvider serves OpenAI and OpenAI-compatible chat APIs (DeepSeek, Qwen).
type OpenAICompatProvider struct {
	name    string
	api     chatCompleter
	model   string
	timeout time.Duration
}

// NewOpenAICompatProvider creates a provider for name. An empty baseURL uses the vendor default.
func NewOpenAICompatProvider(name, apiKey, baseURL, model string, timeout time.Duration) (*OpenAICompatProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%s: API key is required", name)
	}
	if model == "" {
		return nil, fmt.Errorf("%s: model is required", name)
	}

	cfg := openaiapi.DefaultConfig(apiKey)
	if baseURL == "" {
		baseURL = defaultBaseURLs[name]
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAICompatProvider{
		name:    name,
		api:     openaiapi.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}, nil
}

// GenerateContent implements Provider interface
func (p *OpenAICompatProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || len(req.Messages) == 0 {
		return nil, &ProviderError{Provider: p.name, Err: ErrInvalidRequest}
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	apiReq := openaiapi.ChatCompletionRequest{
		Model:    p.model,
		Messages: toChatMessages(req),
	}
	if req.Temperature > 0 {
		apiReq.Temperature = float32(req.Temperature)
	}
	if req.MaxTokens > 0 {
		apiReq.MaxTokens = req.MaxTokens
	}

	resp, err := p.api.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, &ProviderError{Provider: p.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: p.name, Err: errors.New("no choices returned")}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return nil, &ProviderError{Provider: p.name, Err: ErrEmptyResponse}
	}

	return &Response{
		Text:         text,
		ProviderName: p.name,
		ModelName:    p.model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (p *OpenAICompatProvider) Name() string {
	return p.name
}

// Model returns the model name
func (p *OpenAICompatProvider) Model() string {
	return p.model
}

func toChatMessages(req *Request) []openaiapi.ChatCompletionMessage {
	msgs := make([]openaiapi.ChatCompletionMessage, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, openaiapi.ChatCompletionMessage{
			Role:    openaiapi.ChatMessageRoleSystem,
			Content: req.SystemInstruction,
		})
	}
	for _, m := range req.Messages {
		role := openaiapi.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openaiapi.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openaiapi.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	return msgs
}
