package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"specialist-router/internal/conversation/repository"
	"specialist-router/internal/model"
)

func (r *implRepository) PutMessage(ctx context.Context, msg model.Message) error {
	if msg.MessageID == "" || msg.SessionID == "" {
		return fmt.Errorf("%w: message and session id are required", repository.ErrInvalidOptions)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (`+messageColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(message_id) DO NOTHING`,
		msg.MessageID, msg.SessionID, msg.UserID, string(msg.Role), msg.Content,
		msg.Timestamp, string(msg.AgentType), msg.TTL,
	)
	if err != nil {
		r.l.Errorf(ctx, "conversation.repository.sqlite.PutMessage: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return nil
}

func (r *implRepository) QueryBySession(ctx context.Context, opt repository.QueryBySessionOptions) ([]model.Message, error) {
	if opt.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", repository.ErrInvalidOptions)
	}

	q, args := buildSessionQuery(opt)
	return r.query(ctx, q, args...)
}

func (r *implRepository) QueryByUser(ctx context.Context, opt repository.QueryByUserOptions) ([]model.Message, error) {
	if opt.UserID == "" {
		return nil, fmt.Errorf("%w: user id is required", repository.ErrInvalidOptions)
	}

	q, args := buildUserQuery(opt)
	return r.query(ctx, q, args...)
}

func (r *implRepository) DeleteSession(ctx context.Context, opt repository.DeleteSessionOptions) (int, error) {
	if opt.SessionID == "" || opt.UserID == "" {
		return 0, fmt.Errorf("%w: session and user id are required", repository.ErrInvalidOptions)
	}

	res, err := r.db.ExecContext(ctx,
		"DELETE FROM messages WHERE session_id = ? AND user_id = ?",
		opt.SessionID, opt.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *implRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM messages WHERE ttl > 0 AND ttl <= ?", now.Unix())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *implRepository) query(ctx context.Context, q string, args ...any) ([]model.Message, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToQuery, err)
	}
	defer rows.Close()

	var out []model.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToQuery, err)
		}
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToQuery, err)
	}
	return out, nil
}

func scanMessage(rows *sql.Rows) (model.Message, error) {
	var (
		msg       model.Message
		role      string
		agentType string
	)
	if err := rows.Scan(&msg.MessageID, &msg.SessionID, &msg.UserID, &role,
		&msg.Content, &msg.Timestamp, &agentType, &msg.TTL); err != nil {
		return model.Message{}, err
	}
	msg.Role = model.Role(role)
	msg.AgentType = model.AgentType(agentType)
	return msg, nil
}
