package http

import (
	"errors"
	"net/http"

	"specialist-router/internal/conversation"
	"specialist-router/pkg/response"
)

// mapError translates domain errors into HTTP errors. Unknown errors map to nil
// and are answered with a generic 500.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, conversation.ErrUserIDRequired):
		return response.NewHTTPError(http.StatusBadRequest, "User ID is required")
	case errors.Is(err, conversation.ErrSessionIDRequired):
		return response.NewHTTPError(http.StatusBadRequest, "Session ID is required")
	default:
		return nil
	}
}
