package response

// Resp is the envelope of the auxiliary JSON endpoints.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
}
