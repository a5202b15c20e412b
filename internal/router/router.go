package router

import (
	"context"

	"specialist-router/internal/model"
)

// Decide picks the specialist for in. It never fails: every fault degrades to
// keyword classification.
func (r *KeywordRouter) Decide(ctx context.Context, in Input) model.RoutingDecision {
	decision, ok := arbitrateHint(r.agents, in.AgentHint, in.Message)
	if !ok {
		if in.AgentHint != "" {
			r.l.Warnf(ctx, "%s: ignoring unknown agent hint %q", LogPrefixDecide, in.AgentHint)
		}
		decision = r.resolveContinuity(ctx, in)
	}

	r.l.Infof(ctx, "%s: routed to %s (%s)", LogPrefixDecide, decision.AgentType, decision.Reason)
	return decision
}
