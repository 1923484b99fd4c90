package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/repository"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

// GerbangHandler handles HTTP requests for gerbangs
type GerbangHandler struct {
	service *service.GerbangService
}

// NewGerbangHandler creates a new gerbang handler
func NewGerbangHandler(service *service.GerbangService) *GerbangHandler {
	return &GerbangHandler{service: service}
}

// GetGerbangs handles GET /api/v1/gerbangs
func (h *GerbangHandler) GetGerbangs(c *gin.Context) {
	var filter models.GerbangFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	page, err := h.service.GetGerbangs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to get gerbangs")
		return
	}

	response.Success(c, page)
}

// CreateGerbang handles POST /api/v1/gerbangs
func (h *GerbangHandler) CreateGerbang(c *gin.Context) {
	var req models.GerbangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gerbang, err := h.service.CreateGerbang(c.Request.Context(), req)
	if errors.Is(err, repository.ErrDuplicate) {
		response.Conflict(c, "Gerbang with this id and IdCabang already exists")
		return
	}
	if err != nil {
		respondError(c, err, "Failed to create gerbang")
		return
	}

	response.Created(c, gerbang)
}

// UpdateGerbang handles PUT /api/v1/gerbangs
func (h *GerbangHandler) UpdateGerbang(c *gin.Context) {
	var req models.GerbangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	gerbang, err := h.service.UpdateGerbang(c.Request.Context(), req)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Gerbang not found")
		return
	}
	if err != nil {
		respondError(c, err, "Failed to update gerbang")
		return
	}

	response.Success(c, gerbang)
}

// DeleteGerbang handles DELETE /api/v1/gerbangs
func (h *GerbangHandler) DeleteGerbang(c *gin.Context) {
	var req models.DeleteGerbangRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	err := h.service.DeleteGerbang(c.Request.Context(), req)
	if errors.Is(err, repository.ErrNotFound) {
		response.NotFound(c, "Gerbang not found")
		return
	}
	if err != nil {
		respondError(c, err, "Failed to delete gerbang")
		return
	}

	response.Success(c, models.DeleteGerbangResponse{IDGerbang: req.ID, IDCabang: req.IDCabang})
}
