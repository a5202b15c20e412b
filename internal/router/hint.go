package router

import (
	"specialist-router/internal/agent"
	"specialist-router/internal/model"
)

// arbitrateHint honours a known caller hint, except that a document hint yields
// to the knowledge specialist when the message scores strictly higher for it.
// ok is false when the hint is absent or unknown.
func arbitrateHint(agents *agent.Registry, hint model.AgentType, message string) (model.RoutingDecision, bool) {
	if hint == "" || !agents.Known(hint) {
		return model.RoutingDecision{}, false
	}

	if hint == model.AgentDocument && agents.Known(model.AgentKnowledge) {
		scores := Score(agents, message)
		if scores[model.AgentKnowledge] > scores[model.AgentDocument] {
			return model.RoutingDecision{
				AgentType: model.AgentKnowledge,
				Reason:    model.ReasonHintOverride,
				Scores:    scores,
			}, true
		}
	}

	return model.RoutingDecision{AgentType: hint, Reason: model.ReasonExplicit}, true
}
