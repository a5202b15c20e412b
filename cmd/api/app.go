package main

import (
	"context"
	"fmt"

	"specialist-router/config"
	"specialist-router/internal/agent"
	"specialist-router/internal/agent/dispatcher"
	"specialist-router/internal/agent/normalize"
	"specialist-router/internal/chat"
	chatUsecase "specialist-router/internal/chat/usecase"
	"specialist-router/internal/conversation"
	"specialist-router/internal/conversation/repository/sqlite"
	conversationUsecase "specialist-router/internal/conversation/usecase"
	"specialist-router/internal/model"
	"specialist-router/internal/router"
	"specialist-router/pkg/llmprovider"
	"specialist-router/pkg/log"
)

// app is the wired service shared by every subcommand that talks to specialists.
type app struct {
	cfg    *config.Config
	l      log.Logger
	agents *agent.Registry

	chatUC         chat.UseCase
	conversationUC conversation.UseCase
	sweeper        *conversationUsecase.Sweeper

	closeStore func() error
}

func loadConfig() (*config.Config, log.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	return cfg, logger, nil
}

func loadAgents(cfg *config.Config) (*agent.Registry, error) {
	agents, err := agent.Load(cfg.Agents.CatalogPath, model.AgentType(cfg.Agents.Default))
	if err != nil {
		return nil, fmt.Errorf("loading agent catalog: %w", err)
	}
	return agents, nil
}

func newApp(ctx context.Context, cfg *config.Config, logger log.Logger) (*app, error) {
	// 1. Agent catalog
	agents, err := loadAgents(cfg)
	if err != nil {
		return nil, err
	}

	// 2. Conversation store
	store, err := sqlite.New(cfg.Store.Path, logger)
	if err != nil {
		return nil, fmt.Errorf("opening conversation store: %w", err)
	}
	logger.Infof(ctx, "Conversation store opened at %s", cfg.Store.Path)

	// 3. Foundation model (optional)
	var llm llmprovider.Generator
	if len(cfg.LLM.Providers) > 0 {
		providers, pErr := llmprovider.InitializeProviders(ctx, &cfg.LLM)
		if pErr != nil {
			logger.Warnf(ctx, "Foundation model fallback disabled: %v", pErr)
		} else {
			llm = llmprovider.NewManagerFromConfig(providers, &cfg.LLM, logger)
			logger.Infof(ctx, "Foundation model fallback enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM providers configured, specialist fallback will apologise")
	}

	// 4. Dispatcher
	specialist := []dispatcher.Strategy{
		dispatcher.NewRuntimeStrategy(cfg.Runtime.Enabled, nil, cfg.Runtime.Timeout, normalize.New(logger)),
		dispatcher.NewFoundationModelStrategy(llm, dispatcher.NewContextBuilder(store, logger)),
	}
	direct := []dispatcher.Strategy{
		dispatcher.NewDirectStrategy(nil, cfg.Backend.Timeout, cfg.Backend.RoutedFrom, logger),
	}
	d := dispatcher.New(specialist, direct, logger)

	// 5. UseCases
	r := router.New(agents, store, logger)
	convUC := conversationUsecase.New(store, logger)

	return &app{
		cfg:            cfg,
		l:              logger,
		agents:         agents,
		chatUC:         chatUsecase.New(agents, r, d, store, logger),
		conversationUC: convUC,
		sweeper:        conversationUsecase.NewSweeper(convUC, cfg.Store.SweepInterval),
		closeStore:     store.Close,
	}, nil
}

func (a *app) Close() {
	if err := a.closeStore(); err != nil {
		a.l.Warnf(context.Background(), "Failed to close conversation store: %v", err)
	}
}
