package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jengzang/lalin-backend-go/internal/api"
	"github.com/jengzang/lalin-backend-go/internal/cache"
	"github.com/jengzang/lalin-backend-go/internal/database"
	"github.com/jengzang/lalin-backend-go/internal/middleware"
	"github.com/jengzang/lalin-backend-go/internal/repository"
	"github.com/jengzang/lalin-backend-go/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 打开数据库时会执行迁移
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return err
		}
		defer database.Close()
		logger.Info("migrations applied", zap.String("path", cfg.DBPath))
		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage operator accounts",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Create an operator account or reset its password",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
			return err
		}
		defer database.Close()

		auth := service.NewAuthService(repository.NewUserRepository(database.GetDB()), cfg.JWTSecret, cfg.JWTTTL)
		if err := auth.EnsureUser(cmd.Context(), args[0], args[1]); err != nil {
			return err
		}
		logger.Info("user saved", zap.String("username", args[0]))
		return nil
	},
}

// newCache 配置了 REDIS_URL 时使用 Redis，否则退回进程内缓存
func newCache(ctx context.Context) cache.Cache {
	if cfg.RedisURL == "" {
		return cache.NewMemory()
	}
	c, err := cache.NewRedis(ctx, cfg.RedisURL, "lalin:")
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", zap.Error(err))
		return cache.NewMemory()
	}
	logger.Info("using redis cache")
	return c
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化数据库
	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()
	db := database.GetDB()
	loc, err := cfg.LoadLocation()
	if err != nil {
		logger.Warn("falling back to UTC for lalin dates", zap.Error(err))
		loc = time.UTC
	}

	pageCache := newCache(ctx)
	defer pageCache.Close()

	auth := service.NewAuthService(repository.NewUserRepository(db), cfg.JWTSecret, cfg.JWTTTL)
	if cfg.AdminUsername != "" && cfg.AdminPassword != "" {
		if err := auth.EnsureUser(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	}

	lalins := service.NewLalinService(repository.NewLalinRepository(db, loc), pageCache, cfg.CacheTTL, loc, logger)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
	defer limiter.Stop()

	// 初始化路由
	router := api.SetupRouter(api.Deps{
		DB:          db,
		Logger:      logger,
		RateLimiter: limiter,
		Auth:        auth,
		Gerbangs:    service.NewGerbangService(repository.NewGerbangRepository(db), lalins, logger),
		Lalins:      lalins,
		Reports:     service.NewReportService(lalins),
	})

	srv := &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
