package model

import (
	"strconv"
	"strings"
	"time"
)

// Role is the author of a persisted message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// TimestampLayout is fixed-width so lexical order equals chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// AnonymousUserID is used when a caller does not identify itself.
const AnonymousUserID = "anonymous"

// MessageRetention is how long a message lives before the store may expire it.
const MessageRetention = 7 * 24 * time.Hour

// Message is one persisted conversation turn half. Immutable once written.
type Message struct {
	SessionID string
	MessageID string
	UserID    string
	Role      Role
	Content   string
	Timestamp string
	AgentType AgentType // set on assistant messages only
	TTL       int64     // unix seconds
}

// NewMessage stamps a message with its id, timestamp and expiry.
func NewMessage(sessionID, userID string, role Role, content string, agentType AgentType, now time.Time) Message {
	ts := FormatTimestamp(now)
	msg := Message{
		SessionID: sessionID,
		MessageID: MessageIDFor(sessionID, ts),
		UserID:    userID,
		Role:      role,
		Content:   content,
		Timestamp: ts,
		TTL:       now.Add(MessageRetention).Unix(),
	}
	if role == RoleAssistant {
		msg.AgentType = agentType
	}
	return msg
}

// FormatTimestamp renders t in TimestampLayout (UTC).
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a stored timestamp. Timestamps written by older
// clients without fractional seconds are accepted too.
func ParseTimestamp(ts string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, ts)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, ts)
}

// MessageIDFor builds the unique message key.
func MessageIDFor(sessionID, timestamp string) string {
	return sessionID + "#" + timestamp
}

// Expired reports whether the message's TTL has passed at now.
func (m Message) Expired(now time.Time) bool {
	return m.TTL > 0 && now.Unix() >= m.TTL
}

// TTLString is handy for logging.
func (m Message) TTLString() string {
	return strconv.FormatInt(m.TTL, 10)
}

// IsBlank reports whether s has no non-space characters.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
