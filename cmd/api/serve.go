package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	tgDelivery "specialist-router/internal/chat/delivery/telegram"
	"specialist-router/internal/httpserver"
	"specialist-router/internal/middleware"
	"specialist-router/pkg/telegram"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server and the conversation TTL sweeper",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// 1. Configuration and logger
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting specialist router...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 2. Domain wiring
	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	// 3. Telegram channel (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		bot, botErr := telegram.NewBot(cfg.Telegram.BotToken)
		if botErr != nil {
			logger.Warnf(ctx, "Telegram disabled: %v", botErr)
		} else {
			telegramHandler = tgDelivery.New(logger, a.chatUC, a.conversationUC, bot)
			registerTelegramWebhook(ctx, a, bot)
		}
	} else {
		logger.Info(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is not set")
	}

	// 4. HTTP server
	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit),
		Agents:          a.agents,
		ChatUC:          a.chatUC,
		ConversationUC:  a.conversationUC,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		return err
	}

	// 5. Run
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return a.sweeper.Run(gctx) })

	if err := g.Wait(); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		return err
	}

	logger.Info(ctx, "Server stopped gracefully")
	return nil
}

// registerTelegramWebhook points the bot at the configured URL, or at an
// ngrok tunnel when none is configured.
func registerTelegramWebhook(ctx context.Context, a *app, bot *telegram.Bot) {
	webhookURL := a.cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, err := detectNgrokURL(ctx, ngrokAPIBase)
		if err != nil {
			a.l.Warnf(ctx, "Could not detect ngrok URL: %v", err)
			return
		}
		webhookURL = ngrokURL + "/webhook/telegram"
		a.l.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
	}

	if err := bot.SetWebhook(webhookURL); err != nil {
		a.l.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	a.l.Infof(ctx, "Telegram webhook registered at %s for @%s", webhookURL, bot.Username())
}
