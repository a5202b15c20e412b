package chat

import "errors"

var (
	ErrMessageRequired = errors.New("message is required")
)
