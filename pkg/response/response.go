package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a successful envelope carrying data.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
		Message: MessageSuccess,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Accepted sends 202 JSON with data. Used for work that completes asynchronously.
func Accepted(c *gin.Context, data any) {
	c.JSON(http.StatusAccepted, Resp{
		Success: true,
		Data:    data,
		Message: MessageAccepted,
	})
}

// Error sends a 400 failure envelope.
func Error(c *gin.Context, err error) {
	ErrorWithStatus(c, http.StatusBadRequest, err)
}

// ErrorWithStatus sends a failure envelope with the given status code.
func ErrorWithStatus(c *gin.Context, status int, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, Resp{
		Success: false,
		Error:   msg,
	})
}

// HTTPError sends the status and message carried by e.
func HTTPError(c *gin.Context, e *Err) {
	c.JSON(e.Status, Resp{
		Success: false,
		Error:   e.Message,
	})
}

// InternalError sends 500 internal server error. The cause is not exposed.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, Resp{
		Success: false,
		Error:   "Unauthorized",
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Error:   "Too many requests",
	})
}
