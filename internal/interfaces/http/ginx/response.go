package ginx

import (
	"github.com/gin-gonic/gin"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func ErrorResponse(message string) Response {
	return Response{
		Success: false,
		Error:   message,
	}
}

// ParseJSON binds the request body and runs the binding tag validations.
func ParseJSON(c *gin.Context, obj interface{}) error {
	return c.ShouldBindJSON(obj)
}
