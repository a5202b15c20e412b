package conversation

import "errors"

var (
	ErrUserIDRequired    = errors.New("user id is required")
	ErrSessionIDRequired = errors.New("session id is required")
)
