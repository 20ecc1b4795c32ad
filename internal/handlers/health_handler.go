package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"task-manager/backend/internal/database"
	"task-manager/backend/internal/logger"
)

// RootHandler はAPIの稼働メッセージを返します。
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Task management API is running!"})
}

// HealthHandler はDBとの疎通を確認します。
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler は新しいHealthHandlerを作成します。
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health はDB接続が健全なら 200、そうでなければ 503 を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := database.Ping(ctx, h.db); err != nil {
		logger.Warn(ctx, "DB ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "Database connection failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Database connection is healthy"})
}
