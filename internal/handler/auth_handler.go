package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

// AuthHandler handles login
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "username and password are required", err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	response.SuccessWithMessage(c, http.StatusOK, "login success", models.LoginData{
		IsLoggedIn: 1,
		Token:      token,
	})
}
