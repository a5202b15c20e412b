package usecase

import (
	"context"
	"time"

	"specialist-router/internal/agent/dispatcher"
	"specialist-router/internal/chat"
	"specialist-router/internal/model"
	"specialist-router/internal/router"
)

// Route decides which specialist would answer input.
func (uc *implUseCase) Route(ctx context.Context, input chat.ChatInput) (model.RoutingDecision, error) {
	input, err := uc.normalizeInput(input)
	if err != nil {
		return model.RoutingDecision{}, err
	}
	return uc.router.Decide(ctx, router.Input{
		Message:   input.Message,
		SessionID: input.SessionID,
		AgentHint: input.AgentHint,
	}), nil
}

// Chat routes the message, invokes the specialist and records both halves of the turn.
// Invocation failures surface as the apology reply, never as an error.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	input, err := uc.normalizeInput(input)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	asked := uc.now()

	decision := uc.router.Decide(ctx, router.Input{
		Message:   input.Message,
		SessionID: input.SessionID,
		AgentHint: input.AgentHint,
	})

	desc, ok := uc.agents.Get(decision.AgentType)
	if !ok {
		desc = uc.agents.Default()
		decision.AgentType = desc.Type
	}

	uc.l.Info(ctx, "internal.chat.usecase.Chat: routing",
		"agent", string(desc.Type), "reason", string(decision.Reason), "session", input.SessionID)

	res := uc.dispatcher.Dispatch(ctx, dispatcher.Call{
		Agent:     desc,
		Message:   input.Message,
		UserID:    input.UserID,
		SessionID: input.SessionID,
		Decision:  decision,
	})

	answered := uc.now()
	if !answered.After(asked) {
		answered = asked.Add(time.Nanosecond)
	}

	uc.persist(ctx, model.NewMessage(input.SessionID, input.UserID, model.RoleUser, input.Message, "", asked))
	reply := model.NewMessage(input.SessionID, input.UserID, model.RoleAssistant, res.Text, desc.Type, answered)
	uc.persist(ctx, reply)

	return chat.ChatOutput{
		Response:  res.Text,
		Agent:     desc.Type,
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Timestamp: reply.Timestamp,
		Source:    res.Source,
		Reason:    decision.Reason,
		Fields:    res.Fields,
	}, nil
}

// persist writes msg; failures are logged and never fail the turn.
func (uc *implUseCase) persist(ctx context.Context, msg model.Message) {
	if uc.store == nil {
		return
	}
	if err := uc.store.PutMessage(context.WithoutCancel(ctx), msg); err != nil {
		uc.l.Warnf(ctx, "internal.chat.usecase.persist: failed to save %s message: %v", msg.Role, err)
	}
}
