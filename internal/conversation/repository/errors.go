package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert message")
	ErrFailedToQuery  = errors.New("failed to query messages")
	ErrFailedToDelete = errors.New("failed to delete messages")
	ErrInvalidOptions = errors.New("invalid query options")
)
