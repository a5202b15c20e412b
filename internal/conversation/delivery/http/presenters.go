package http

import (
	"specialist-router/internal/conversation"
)

// --- Request DTOs ---

type recentReq struct {
	UserID string `form:"userId"`
}

func (r recentReq) toInput() conversation.RecentChatsInput {
	return conversation.RecentChatsInput{UserID: r.UserID}
}

type sessionReq struct {
	SessionID string `form:"-"` // populated from URI param
	UserID    string `form:"userId"`
}

func (r sessionReq) toTranscriptInput() conversation.TranscriptInput {
	return conversation.TranscriptInput{SessionID: r.SessionID, UserID: r.UserID}
}

func (r sessionReq) toDeleteInput() conversation.DeleteSessionInput {
	return conversation.DeleteSessionInput{SessionID: r.SessionID, UserID: r.UserID}
}

// --- Response DTOs ---

type recentChatResp struct {
	SessionID       string `json:"session_id"`
	LastMessageTime string `json:"last_message_time"`
	Preview         string `json:"preview"`
	AgentType       string `json:"agent_type"`
	LastActivity    string `json:"last_activity"`
}

type recentResp struct {
	RecentChats []recentChatResp `json:"recent_chats"`
	Count       int              `json:"count"`
}

func (h *handler) newRecentResp(out conversation.RecentChatsOutput) recentResp {
	chats := make([]recentChatResp, len(out.Chats))
	for i, c := range out.Chats {
		chats[i] = recentChatResp{
			SessionID:       c.SessionID,
			LastMessageTime: c.LastMessageTime,
			Preview:         c.Preview,
			AgentType:       string(c.AgentType),
			LastActivity:    c.LastActivity,
		}
	}
	return recentResp{RecentChats: chats, Count: len(chats)}
}

type messageResp struct {
	ID        string  `json:"id"`
	Role      string  `json:"role"`
	Content   string  `json:"content"`
	Timestamp string  `json:"timestamp"`
	AgentType *string `json:"agent_type"`
}

type transcriptResp struct {
	SessionID string        `json:"session_id"`
	Messages  []messageResp `json:"messages"`
	Count     int           `json:"count"`
}

func (h *handler) newTranscriptResp(out conversation.TranscriptOutput) transcriptResp {
	msgs := make([]messageResp, len(out.Messages))
	for i, m := range out.Messages {
		msgs[i] = messageResp{
			ID:        m.MessageID,
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		}
		if m.AgentType != "" {
			at := string(m.AgentType)
			msgs[i].AgentType = &at
		}
	}
	return transcriptResp{SessionID: out.SessionID, Messages: msgs, Count: len(msgs)}
}

type deleteResp struct {
	SessionID string `json:"session_id"`
	Deleted   int    `json:"deleted"`
}

func (h *handler) newDeleteResp(out conversation.DeleteSessionOutput) deleteResp {
	return deleteResp{SessionID: out.SessionID, Deleted: out.Deleted}
}
