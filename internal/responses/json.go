// Package responses holds the envelope every /api/v1 endpoint answers with.
package responses

import "github.com/gin-gonic/gin"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is {status, message, data, error}. Data is omitted on plain
// failures; error carries the Go or engine error text.
type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a full envelope. Handlers use it directly only when a failed
// query still has a result to return, such as an engine error that carries
// the execution id.
func JSON(c *gin.Context, statusCode int, status string, data any, message string, err error) {
	resp := APIResponse{
		Status:  status,
		Message: message,
		Data:    data,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(statusCode, resp)
}

// Success answers with data and a user-facing message such as "Returned 4 rows".
func Success(c *gin.Context, statusCode int, data any, message string) {
	JSON(c, statusCode, StatusSuccess, data, message, nil)
}

// Fail answers without data. Validation errors go out as 400, unexpected
// errors as 500.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	JSON(c, statusCode, StatusError, nil, message, err)
}
