package http

import (
	"errors"
	"net/http"

	"specialist-router/internal/chat"
	"specialist-router/pkg/response"
)

const (
	errMessageRequired = "Message is required"
	errInvalidBody     = "Invalid request body"
	errInternal        = "Internal server error"
	errInternalDetail  = "Failed to process agent request"
)

// mapError translates domain errors into HTTP errors. Unknown errors map to nil.
func (h *handler) mapError(err error) *response.HTTPError {
	switch {
	case errors.Is(err, chat.ErrMessageRequired):
		return response.NewHTTPError(http.StatusBadRequest, errMessageRequired)
	default:
		return nil
	}
}
