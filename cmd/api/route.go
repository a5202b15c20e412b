package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"specialist-router/internal/model"
	"specialist-router/internal/router"
	"specialist-router/pkg/log"
)

var routeCmd = &cobra.Command{
	Use:   "route <message>",
	Short: "Show which specialist a message would be routed to",
	Long: `Show which specialist a message would be routed to, with keyword scores.
No specialist is invoked and nothing is stored.

Examples:
  specialist-router route "I need to book an appointment"
  specialist-router route "what does this clause mean" --agent document-agent`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hint, _ := cmd.Flags().GetString("agent")
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		agents, err := loadAgents(cfg)
		if err != nil {
			return err
		}

		message := strings.Join(args, " ")
		decision := router.New(agents, nil, log.NewNop()).Decide(context.Background(), router.Input{
			Message:   message,
			AgentHint: model.AgentType(hint),
		})
		if decision.Scores == nil {
			decision.Scores = router.Score(agents, message)
		}

		out := cmd.OutOrStdout()
		if asJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{
				"agent":  decision.AgentType,
				"reason": decision.Reason,
				"scores": decision.Scores,
			})
		}

		fmt.Fprintf(out, "agent:  %s\n", decision.AgentType)
		fmt.Fprintf(out, "reason: %s\n", decision.Reason)
		fmt.Fprintln(out, "scores:")
		for _, t := range agents.Types() {
			fmt.Fprintf(out, "  %-18s %d\n", t, decision.Scores[t])
		}
		return nil
	},
}

func init() {
	routeCmd.Flags().String("agent", "", "specialist hint, e.g. document-agent")
	routeCmd.Flags().Bool("json", false, "print the decision as JSON")
}
