package http

import (
	"specialist-router/internal/chat"
	"specialist-router/internal/model"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	AgentType string `json:"agentType"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{
		Message:   r.Message,
		UserID:    r.UserID,
		SessionID: r.SessionID,
		AgentHint: model.AgentType(r.AgentType),
	}
}

// --- Response DTOs ---

// chatResp documents the envelope; backend extras are added as top-level keys.
type chatResp struct {
	Response      string `json:"response"`
	Agent         string `json:"agent"`
	SessionID     string `json:"sessionId"`
	Timestamp     string `json:"timestamp"`
	Source        string `json:"source"`
	RoutingReason string `json:"routingReason"`
}

type errorResp struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *handler) newChatResp(out chat.ChatOutput) map[string]any {
	body := make(map[string]any, len(out.Fields)+6)
	for k, v := range out.Fields {
		body[k] = v
	}
	body["response"] = out.Response
	body["agent"] = string(out.Agent)
	body["sessionId"] = out.SessionID
	body["timestamp"] = out.Timestamp
	body["source"] = string(out.Source)
	body["routingReason"] = string(out.Reason)
	return body
}
