package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"task-manager/backend/internal/config"
	"task-manager/backend/internal/database"
	"task-manager/backend/internal/models"
	"task-manager/backend/internal/repositories"
	"task-manager/backend/internal/routes"
)

// NewTestDB はテストごとに独立したインメモリSQLiteを作成し、マイグレーションまで行います。
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(context.Background(), db), "Failed to migrate test database")
	return db
}

// TestConfig はテスト用の設定を返します。
func TestConfig() *config.Config {
	return &config.Config{
		AppEnv:           "test",
		HTTPPort:         "0",
		Database:         config.DatabaseConfig{Driver: "sqlite", Path: ":memory:", MaxOpenConns: 1},
		CORSAllowOrigins: []string{"*"},
		LogLevel:         "error",
		LogFormat:        "text",
	}
}

// SetupTestDB はテスト用DB・ルーター・リポジトリをまとめて用意します。
func SetupTestDB(t *testing.T) (*gorm.DB, *gin.Engine, *repositories.TaskRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)
	router := routes.SetupRouter(db, TestConfig())
	return db, router, repositories.NewTaskRepository(db)
}

// DoJSON は body をJSONにしてリクエストを送り、レスポンスを返します。
func DoJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

// CreateTestTask は API 経由でタスクを作成します。
func CreateTestTask(t *testing.T, router http.Handler, title, priority, dueDate string) *models.Task {
	t.Helper()

	payload := map[string]any{
		"title":       title,
		"description": "Creada en test",
		"priority":    priority,
		"due_date":    dueDate,
	}
	resp := DoJSON(t, router, http.MethodPost, "/tasks/", payload)
	require.Equal(t, http.StatusOK, resp.Code, "Task作成に失敗しました: %s", resp.Body.String())

	var created models.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return &created
}

// DecodeTasks はレスポンスボディをタスク一覧として読み込みます。
func DecodeTasks(t *testing.T, resp *httptest.ResponseRecorder) []models.Task {
	t.Helper()

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tasks))
	return tasks
}

// Serve は組み立て済みのリクエストをルーターに流します。
func Serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}
