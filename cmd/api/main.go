package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "specialist-router/docs" // Swagger docs
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "specialist-router",
	Short:   "Routes chat messages to specialist agents",
	Version: version,
	Long: `specialist-router picks the best specialist for each chat message
(health, appointment, community, document or knowledge), invokes it, and keeps
the conversation history.

With no subcommand it runs the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

// @title       Specialist Router API
// @description Routes chat messages to health, appointment, community, document and knowledge specialists.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeCmd)
	rootCmd.AddCommand(mcpCmd)
}
