package httpserver

import "github.com/gin-gonic/gin"

// apiResponse is the envelope every mutating endpoint answers with; the
// mobile client keys off the success flag, not the HTTP status.
type apiResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondOK(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, apiResponse{Success: true, Message: message, Data: data})
}

func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: false, Message: message})
}
