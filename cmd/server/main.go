package main

import (
	"fmt"
	"os"
	// 容器内可能没有系统时区数据
	_ "time/tzdata"

	"github.com/jengzang/lalin-backend-go/internal/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd 默认启动 HTTP 服务
var rootCmd = &cobra.Command{
	Use:   "lalin-server",
	Short: "Lalin toll traffic reporting backend",
	Long: `Serves gerbang management, raw lalin records and the daily
laporan lalin report and dashboard over HTTP.

Run without arguments to start the server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 加载配置
		cfg = config.Load()

		var err error
		logger, err = newLogger(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

func newLogger(level string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

func init() {
	// 金额以 JSON 数字输出
	decimal.MarshalJSONWithoutQuotes = true

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	userCmd.AddCommand(userAddCmd)
	rootCmd.AddCommand(userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
