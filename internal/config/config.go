package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	JWTTTL    time.Duration
	LogLevel  string

	// 空字符串表示使用进程内缓存
	RedisURL string
	CacheTTL time.Duration

	RateLimit  int
	RateWindow time.Duration

	// 解析 Lalin 时间戳时使用的时区
	Timezone string

	AdminUsername string
	AdminPassword string
}

// Load 加载配置
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", ":8080"),
		DBPath:        getEnv("DB_PATH", "./data/lalin.db"),
		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTTTL:        getEnvDuration("JWT_TTL", 24*time.Hour),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisURL:      os.Getenv("REDIS_URL"),
		CacheTTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		RateLimit:     getEnvInt("RATE_LIMIT", 100),
		RateWindow:    getEnvDuration("RATE_WINDOW", time.Minute),
		Timezone:      getEnv("TIMEZONE", "Asia/Jakarta"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

// LoadLocation 加载配置的时区
func (c *Config) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Location 返回配置的时区，无法加载时退回 UTC
func (c *Config) Location() *time.Location {
	loc, err := c.LoadLocation()
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
