package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/lalin-backend-go/internal/handler"
	"github.com/jengzang/lalin-backend-go/internal/middleware"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/jengzang/lalin-backend-go/pkg/response"
	"go.uber.org/zap"
)

// Deps 路由所需的依赖
type Deps struct {
	DB          *sql.DB
	Logger      *zap.Logger
	RateLimiter *middleware.RateLimiter

	Auth     *service.AuthService
	Gerbangs *service.GerbangService
	Lalins   *service.LalinService
	Reports  *service.ReportService
}

// SetupRouter 设置路由
func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(deps.Logger), middleware.CORS())
	if deps.RateLimiter != nil {
		r.Use(middleware.RateLimit(deps.RateLimiter))
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		if err := deps.DB.PingContext(c.Request.Context()); err != nil {
			response.Error(c, http.StatusServiceUnavailable, "database unavailable", err)
			return
		}
		response.SuccessWithMessage(c, http.StatusOK, "Lalin Backend API is running", gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(deps.Auth)
	gerbangHandler := handler.NewGerbangHandler(deps.Gerbangs)
	lalinHandler := handler.NewLalinHandler(deps.Lalins)
	reportHandler := handler.NewReportHandler(deps.Reports)

	// API 路由组
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", authHandler.Login)

		// 以下接口需要登录
		protected := api.Group("", middleware.Auth(deps.Auth))

		gerbangs := protected.Group("/gerbangs")
		{
			gerbangs.GET("", gerbangHandler.GetGerbangs)
			gerbangs.POST("", gerbangHandler.CreateGerbang)
			gerbangs.PUT("", gerbangHandler.UpdateGerbang)
			gerbangs.DELETE("", gerbangHandler.DeleteGerbang)
		}

		lalins := protected.Group("/lalins")
		{
			lalins.GET("", lalinHandler.GetLalins)
			lalins.POST("", lalinHandler.ImportLalins)
		}

		// 报表接口
		laporan := protected.Group("/laporan-lalin")
		{
			laporan.GET("/payment-methods", reportHandler.GetPaymentMethods)
			laporan.GET("/per-hari", reportHandler.GetDailyReport)
			laporan.GET("/per-hari/export", reportHandler.ExportDailyReport)
			laporan.GET("/dashboard", reportHandler.GetDashboard)
		}
	}

	return r
}
