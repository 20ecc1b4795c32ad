// Package routesはroutingを行います。
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"task-manager/backend/internal/config"
	"task-manager/backend/internal/handlers"
	"task-manager/backend/internal/metrics"
	"task-manager/backend/internal/repositories"
	"task-manager/backend/internal/services"
)

// CORSConfig は設定から CORS の設定を組み立てます。
func CORSConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
		c.AllowOrigins = nil
		c.AllowHeaders = []string{"*"}
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
		c.AllowCredentials = true
		c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
	}
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"}
	c.ExposeHeaders = []string{RequestIDHeader}
	return c
}

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware())
	r.Use(cors.New(CORSConfig(cfg)))

	// リポジトリ
	taskRepo := repositories.NewTaskRepository(db)

	// サービス
	taskService := services.NewTaskService(taskRepo)

	// ハンドラー
	taskHandler := handlers.NewTaskHandler(taskService)
	healthHandler := handlers.NewHealthHandler(db)

	// ルーティング
	r.GET("/", handlers.RootHandler)
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	tasks := r.Group("/tasks")
	{
		tasks.POST("/", taskHandler.CreateTaskHandler)
		tasks.POST("", taskHandler.CreateTaskHandler)
		tasks.GET("/", taskHandler.ListTasksHandler)
		tasks.GET("", taskHandler.ListTasksHandler)
		tasks.GET("/search", taskHandler.SearchTasksHandler)
		tasks.PATCH("/:id/toggle", taskHandler.ToggleTaskHandler)
		tasks.DELETE("/:id", taskHandler.DeleteTaskHandler)
	}

	return r
}
