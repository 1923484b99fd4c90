package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

// LalinHandler handles HTTP requests for raw lalins
type LalinHandler struct {
	service *service.LalinService
}

// NewLalinHandler creates a new lalin handler
func NewLalinHandler(service *service.LalinService) *LalinHandler {
	return &LalinHandler{service: service}
}

// GetLalins handles GET /api/v1/lalins
func (h *LalinHandler) GetLalins(c *gin.Context) {
	var filter models.LalinFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	page, err := h.service.GetLalins(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to get lalins")
		return
	}

	response.Success(c, page)
}

// ImportLalins handles POST /api/v1/lalins
func (h *LalinHandler) ImportLalins(c *gin.Context) {
	var req models.ImportLalinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	lalins, err := h.service.Import(c.Request.Context(), req.Lalins)
	if err != nil {
		respondError(c, err, "Failed to import lalins")
		return
	}

	response.Created(c, gin.H{"count": len(lalins), "rows": lalins})
}
