package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response represents a standard API response
type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

// Success sends a successful response
func Success(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, http.StatusOK, "success", data)
}

// SuccessWithMessage sends a successful response with an explicit status code
func SuccessWithMessage(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Status:  true,
		Message: message,
		Code:    code,
		Data:    data,
	})
}

// Created sends a 201 created response
func Created(c *gin.Context, data interface{}) {
	SuccessWithMessage(c, http.StatusCreated, "created", data)
}

// Error sends an error response and aborts the chain. err is logged, never
// sent to the client.
func Error(c *gin.Context, code int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
		if code >= http.StatusInternalServerError {
			zap.L().Error(message, zap.Int("code", code), zap.String("path", c.Request.URL.Path), zap.Error(err))
		}
	}
	c.AbortWithStatusJSON(code, Response{
		Status:  false,
		Message: message,
		Code:    code,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message, nil)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 conflict response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, message, nil)
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	Error(c, http.StatusTooManyRequests, message, nil)
}

// InternalError sends a 500 internal server error response
func InternalError(c *gin.Context, message string, err error) {
	Error(c, http.StatusInternalServerError, message, err)
}
