package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the uniform error shape for every failure response.
type ErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

const internalErrorMessage = "An unexpected internal server error occurred."

func abortWithError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, ErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   msg,
	})
}
