package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"specialist-router/config"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// NewManagerFromConfig builds a Manager from config, parsing durations.
func NewManagerFromConfig(providers []Provider, cfg *config.LLMConfig, logger Logger) *Manager {
	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
	}, logger)
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout, _ := time.ParseDuration(cfg.Timeout)

	switch cfg.Name {
	case ProviderGemini:
		return NewGeminiProvider(ctx, cfg.APIKey, cfg.Model, timeout)

	case ProviderOpenAI, ProviderDeepSeek:
		return NewOpenAICompatProvider(cfg.Name, cfg.APIKey, cfg.BaseURL, cfg.Model, timeout)

	case ProviderQwen, "alibaba":
		return NewOpenAICompatProvider(ProviderQwen, cfg.APIKey, cfg.BaseURL, cfg.Model, timeout)

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}
