package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	mcpDelivery "specialist-router/internal/chat/delivery/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the router as MCP tools over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx, cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		s := mcpDelivery.NewServer(mcpDelivery.Deps{
			Chat:          a.chatUC,
			Conversations: a.conversationUC,
			Agents:        a.agents,
		})
		return mcpDelivery.Serve(ctx, s, os.Stdin, os.Stdout)
	},
}
