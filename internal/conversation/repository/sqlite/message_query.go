package sqlite

import (
	"strings"

	"specialist-router/internal/conversation/repository"
)

const messageColumns = "message_id, session_id, user_id, role, content, timestamp, agent_type, ttl"

func buildSessionQuery(opt repository.QueryBySessionOptions) (string, []any) {
	var sb strings.Builder
	args := []any{opt.SessionID}

	sb.WriteString("SELECT " + messageColumns + " FROM messages WHERE session_id = ?")
	if opt.UserID != "" {
		sb.WriteString(" AND user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.MostRecentFirst {
		sb.WriteString(" ORDER BY timestamp DESC")
	} else {
		sb.WriteString(" ORDER BY timestamp ASC")
	}
	if opt.Limit > 0 {
		sb.WriteString(" LIMIT ?")
		args = append(args, opt.Limit)
	}
	return sb.String(), args
}

func buildUserQuery(opt repository.QueryByUserOptions) (string, []any) {
	q := "SELECT " + messageColumns + " FROM messages WHERE user_id = ? ORDER BY timestamp DESC"
	args := []any{opt.UserID}
	if opt.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opt.Limit)
	}
	return q, args
}
