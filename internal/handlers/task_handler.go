package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"task-manager/backend/internal/logger"
	"task-manager/backend/internal/metrics"
	"task-manager/backend/internal/models"
	"task-manager/backend/internal/repositories"
	"task-manager/backend/internal/services"
)

// TaskHandler はTask関連のハンドラーを管理します。
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler は新しいTaskHandlerを作成します。
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// CreateTaskHandler は新しいTaskを作成します。
func (h *TaskHandler) CreateTaskHandler(c *gin.Context) {
	var req models.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ObserveInvalidRequest("create")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request payload: " + err.Error()})
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), &req)
	observe("create", err)
	if err != nil {
		h.respondError(c, err, "Failed to create task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// ListTasksHandler はすべてのTaskを返します。
func (h *TaskHandler) ListTasksHandler(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	observe("list", err)
	if err != nil {
		h.respondError(c, err, "Failed to fetch tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// SearchTasksHandler はタイトル・期日でTaskを検索します。
func (h *TaskHandler) SearchTasksHandler(c *gin.Context) {
	var q models.TaskSearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		metrics.ObserveInvalidRequest("search")
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid query parameters"})
		return
	}

	tasks, err := h.taskService.SearchTasks(c.Request.Context(), q.Title, q.DueDate)
	observe("search", err)
	if err != nil {
		h.respondError(c, err, "Failed to search tasks")
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// ToggleTaskHandler はTaskの完了状態を反転します。
func (h *TaskHandler) ToggleTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	task, err := h.taskService.ToggleTask(c.Request.Context(), id)
	observe("toggle", err)
	if err != nil {
		h.respondError(c, err, "Failed to toggle task")
		return
	}
	c.JSON(http.StatusOK, task)
}

// DeleteTaskHandler はTaskを削除します。
func (h *TaskHandler) DeleteTaskHandler(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.taskService.DeleteTask(c.Request.Context(), id)
	observe("delete", err)
	if err != nil {
		h.respondError(c, err, "Failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Task deleted"})
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid ID format"})
		return 0, false
	}
	return id, true
}

// respondError はエラー種別に応じたステータスで応答します。
func (h *TaskHandler) respondError(c *gin.Context, err error, msg string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"detail": ve.Message})
	case errors.Is(err, repositories.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Task not found"})
	default:
		logger.Error(c.Request.Context(), msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

// observe は操作結果を分類してメトリクスに記録します。
func observe(op string, err error) {
	metrics.ObserveTaskOperation(op, resultLabel(err))
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, repositories.ErrTaskNotFound):
		return "not_found"
	case services.IsValidationError(err):
		return "invalid"
	default:
		return "error"
	}
}
