// Package config は環境変数からアプリケーション設定を読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	AppEnv   string `validate:"required,oneof=development test production"`
	HTTPPort string `validate:"required,numeric"`
	Database DatabaseConfig
	// CORSAllowOrigins が ["*"] の場合は全オリジンを許可します。
	CORSAllowOrigins []string `validate:"required,min=1,dive,required"`
	LogLevel         string   `validate:"oneof=debug info warn error"`
	LogFormat        string   `validate:"oneof=json text"`
}

// DatabaseConfig はDB接続設定です。
type DatabaseConfig struct {
	Driver          string `validate:"oneof=mysql sqlite"`
	User            string `validate:"required_if=Driver mysql"`
	Password        string
	Host            string `validate:"required_if=Driver mysql"`
	Port            string `validate:"omitempty,numeric"`
	Name            string `validate:"required_if=Driver mysql"`
	Path            string `validate:"required_if=Driver sqlite"`
	MaxOpenConns    int    `validate:"gte=1"`
	MaxIdleConns    int    `validate:"gte=0"`
	ConnMaxLifetime time.Duration
}

// AllowAllOrigins は全オリジン許可の設定かどうかを返します。
func (c *Config) AllowAllOrigins() bool {
	return len(c.CORSAllowOrigins) == 1 && c.CORSAllowOrigins[0] == "*"
}

var validate = validator.New()

// Load は .env（存在すれば）と環境変数から設定を読み込み、検証します。
func Load() (*Config, error) {
	// .env が無い環境（コンテナ等）では環境変数のみを使う
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv は現在の環境変数だけから設定を組み立てます。
func FromEnv() (*Config, error) {
	lifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_CONN_MAX_LIFETIME: %w", err)
	}

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		HTTPPort: getEnv("HTTP_PORT", "8000"),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(getEnv("DB_DRIVER", "mysql")),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASS"),
			Host:            getEnv("DB_HOST", "127.0.0.1"),
			Port:            getEnv("DB_PORT", "3306"),
			Name:            os.Getenv("DB_NAME"),
			Path:            getEnv("DB_PATH", "tasks.db"),
			MaxOpenConns:    getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: lifetime,
		},
		CORSAllowOrigins: getSliceEnv("CORS_ALLOW_ORIGINS", "*"),
		LogLevel:         strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:        strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getIntEnv(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getSliceEnv(key, defaultVal string) []string {
	raw := getEnv(key, defaultVal)
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
