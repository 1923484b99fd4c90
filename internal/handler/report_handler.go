package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/models"
	"github.com/jengzang/lalin-backend-go/internal/report"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
)

// ReportHandler handles the laporan lalin endpoints
type ReportHandler struct {
	service *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(service *service.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GetPaymentMethods handles GET /api/v1/laporan-lalin/payment-methods
func (h *ReportHandler) GetPaymentMethods(c *gin.Context) {
	response.Success(c, gin.H{
		"default": report.DefaultPaymentMethod,
		"tabs":    report.Tabs(),
	})
}

// GetDailyReport handles GET /api/v1/laporan-lalin/per-hari
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	var q models.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	rep, err := h.service.DailyReport(c.Request.Context(), q)
	if err != nil {
		respondError(c, err, "Failed to build daily report")
		return
	}

	response.Success(c, rep)
}

// ExportDailyReport handles GET /api/v1/laporan-lalin/per-hari/export
func (h *ReportHandler) ExportDailyReport(c *gin.Context) {
	var q models.ReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	// buffered so a failure can still be reported as JSON
	var buf bytes.Buffer
	if err := h.service.ExportCSV(c.Request.Context(), q, &buf); err != nil {
		respondError(c, err, "Failed to export daily report")
		return
	}

	name := "laporan-lalin"
	if q.Tanggal != "" {
		name += "-" + q.Tanggal
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.csv"`, name))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// GetDashboard handles GET /api/v1/laporan-lalin/dashboard
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	var filter models.LalinFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	dash, err := h.service.Dashboard(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "Failed to build dashboard")
		return
	}

	response.Success(c, dash)
}
