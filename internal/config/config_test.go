package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setMySQLEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "3306")
	t.Setenv("DB_NAME", "tasks")
}

func TestFromEnv_Defaults(t *testing.T) {
	setMySQLEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.True(t, cfg.AllowAllOrigins())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestFromEnv_CORSOriginsList(t *testing.T) {
	setMySQLEnv(t)
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5500, http://127.0.0.1:5500,")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:5500", "http://127.0.0.1:5500"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestFromEnv_SQLiteNeedsNoCredentials(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("DB_PATH", "/tmp/tasks.db")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/tasks.db", cfg.Database.Path)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown driver", "DB_DRIVER", "oracle"},
		{"missing mysql user", "DB_USER", ""},
		{"bad log level", "LOG_LEVEL", "verbose"},
		{"bad port", "HTTP_PORT", "http"},
		{"bad lifetime", "DB_CONN_MAX_LIFETIME", "forever"},
		{"bad env", "APP_ENV", "staging"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setMySQLEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
