package dispatcher

import (
	"context"

	"specialist-router/internal/model"
	"specialist-router/pkg/log"
)

// Dispatcher invokes a specialist through an ordered chain of strategies per agent family.
type Dispatcher struct {
	chains map[model.AgentFamily][]Strategy
	l      log.Logger
}

// New creates a Dispatcher. specialist is tried in order for specialist agents,
// direct for agents served by a dedicated backend.
func New(specialist, direct []Strategy, l log.Logger) *Dispatcher {
	return &Dispatcher{
		chains: map[model.AgentFamily][]Strategy{
			model.FamilySpecialist: specialist,
			model.FamilyDirect:     direct,
		},
		l: l,
	}
}

// Dispatch returns the first successful strategy result, or the apology when all fail.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) model.InvocationResult {
	family := call.Agent.Family
	if family == "" {
		family = model.FamilySpecialist
	}

	for _, s := range d.chains[family] {
		if ctx.Err() != nil {
			break
		}

		res, err := s.Invoke(ctx, call)
		if err == nil {
			d.l.Info(ctx, "internal.agent.dispatcher.Dispatch: answered",
				"agent", string(call.Agent.Type), "source", string(res.Source))
			return res
		}

		d.l.Warn(ctx, "internal.agent.dispatcher.Dispatch: strategy failed",
			"agent", string(call.Agent.Type), "strategy", s.Name(), "error", err.Error())
	}

	return Apology()
}

// Apology is the fixed reply used when no strategy succeeded.
func Apology() model.InvocationResult {
	return model.InvocationResult{Text: ApologyText, Source: model.SourceFallbackApology}
}
