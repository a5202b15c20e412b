package conversation

import "specialist-router/internal/model"

// --- Domain Models ---

// RecentChat summarises one session for a user's chat list.
type RecentChat struct {
	SessionID       string
	Preview         string
	AgentType       model.AgentType
	LastMessageTime string // stored timestamp of the newest message
	LastActivity    string // "2006-01-02 15:04"
}

// --- UseCase Inputs ---

type RecentChatsInput struct {
	UserID string
}

type TranscriptInput struct {
	SessionID string
	UserID    string
}

type DeleteSessionInput struct {
	SessionID string
	UserID    string
}

// --- UseCase Outputs ---

type RecentChatsOutput struct {
	Chats []RecentChat
}

type TranscriptOutput struct {
	SessionID string
	Messages  []model.Message
}

type DeleteSessionOutput struct {
	SessionID string
	Deleted   int
}
