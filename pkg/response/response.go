package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. The status comes from an *HTTPError when
// present, otherwise 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := statusOf(err, http.StatusBadRequest)
	c.JSON(status, Resp{
		ErrorCode: 1,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: 429,
		Message:   "Too many requests",
	})
}

// Flat sends body as-is. Used by endpoints whose public contract is not the Resp envelope.
func Flat(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// FlatError sends {"error": msg} and, when detail is non-empty, a "message" field.
func FlatError(c *gin.Context, status int, msg, detail string) {
	body := gin.H{"error": msg}
	if detail != "" {
		body["message"] = detail
	}
	c.AbortWithStatusJSON(status, body)
}
