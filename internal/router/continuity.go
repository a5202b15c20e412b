package router

import (
	"context"
	"strings"

	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

// resolveContinuity keeps the session's current specialist for acknowledgements
// and short replies, and otherwise classifies by keywords.
func (r *KeywordRouter) resolveContinuity(ctx context.Context, in Input) model.RoutingDecision {
	lastAgent := r.lastAgent(ctx, in.SessionID)

	if lastAgent != "" && r.agents.Known(lastAgent) && IsFollowUp(in.Message) {
		r.l.Infof(ctx, "%s: continuing with %s", LogPrefixContinuity, lastAgent)
		return model.RoutingDecision{AgentType: lastAgent, Reason: model.ReasonContinuity}
	}

	best, scores := Classify(r.agents, in.Message)
	return model.RoutingDecision{AgentType: best, Reason: model.ReasonClassification, Scores: scores}
}

// lastAgent returns the specialist of the most recent assistant message in the
// continuity window. Store failures count as empty history.
func (r *KeywordRouter) lastAgent(ctx context.Context, sessionID string) model.AgentType {
	if r.history == nil || sessionID == "" {
		return ""
	}

	msgs, err := r.history.QueryBySession(ctx, repository.QueryBySessionOptions{
		SessionID:       sessionID,
		Limit:           ContinuityWindow,
		MostRecentFirst: true,
	})
	if err != nil {
		r.l.Warnf(ctx, "%s: history unavailable, classifying without it: %v", LogPrefixContinuity, err)
		return ""
	}

	for _, m := range msgs {
		if m.Role == model.RoleAssistant && m.AgentType != "" {
			return m.AgentType
		}
	}
	return ""
}

// IsFollowUp reports whether message reads as an acknowledgement or a short reply.
func IsFollowUp(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, p := range continuationPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return len(strings.Fields(message)) <= ShortReplyMaxWords
}
