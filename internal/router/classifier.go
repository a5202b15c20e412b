package router

import (
	"strings"

	"specialist-router/internal/agent"
	"specialist-router/internal/model"
)

// Score counts, per specialist, the keywords that occur as literal substrings
// of the lower-cased message.
func Score(agents *agent.Registry, message string) Scores {
	lower := strings.ToLower(message)
	scores := make(Scores)
	for _, d := range agents.List() {
		scores[d.Type] = countHits(lower, d.Keywords)
	}
	return scores
}

func countHits(lower string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

// Classify returns the highest-scoring specialist. Ties go to the earliest
// specialist in catalog order; all-zero scores yield the default specialist.
func Classify(agents *agent.Registry, message string) (model.AgentType, Scores) {
	scores := Score(agents, message)

	best := agents.Default().Type
	bestScore := 0
	for _, t := range agents.Types() {
		if scores[t] > bestScore {
			best = t
			bestScore = scores[t]
		}
	}
	return best, scores
}
