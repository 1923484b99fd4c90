package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/repository"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

// respondError maps service and repository errors to HTTP responses.
// fallback is the message used for unexpected failures.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		response.BadRequest(c, validationMessage(err))
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, repository.ErrDuplicate):
		response.Conflict(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, fallback, err)
	}
}

// validationMessage strips the sentinel prefix from a wrapped validation error
func validationMessage(err error) string {
	msg := strings.TrimPrefix(err.Error(), service.ErrValidation.Error()+": ")
	if msg == "" {
		return service.ErrValidation.Error()
	}
	return msg
}
