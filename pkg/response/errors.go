package response

import "errors"

// HTTPError carries the status code a delivery layer wants for a domain error.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func statusOf(err error, fallback int) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) && httpErr.Status != 0 {
		return httpErr.Status
	}
	return fallback
}
