// Package repositories はデータベース操作を行うリポジトリを提供します。
package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"task-manager/backend/internal/logger"
	"task-manager/backend/internal/models"
)

// ErrTaskNotFound はタスクが見つからない場合のエラーです。
var ErrTaskNotFound = errors.New("task not found")

// TaskFilter は検索条件です。ゼロ値のフィールドは条件に含めません。
type TaskFilter struct {
	Title   string
	DueDate models.Date
}

// TaskRepository は tasks テーブルへの操作を行います。
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository は新しいTaskRepositoryを作成します。
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create は新しいタスクを挿入します。ID と created_at は挿入時に設定されます。
func (r *TaskRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		logger.Error(ctx, "Failed to insert task", "error", err)
		return nil, fmt.Errorf("could not insert task: %w", err)
	}
	return t, nil
}

// FindAll はすべてのタスクを返します。
func (r *TaskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	return r.Search(ctx, TaskFilter{})
}

// Search は filter に一致するタスクを返します。
func (r *TaskRepository) Search(ctx context.Context, filter TaskFilter) ([]models.Task, error) {
	q := r.db.WithContext(ctx).Model(&models.Task{})
	if filter.Title != "" {
		q = q.Where(foldedTitle+" LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(filter.Title))+"%")
	}
	if !filter.DueDate.IsZero() {
		q = q.Where("due_date = ?", filter.DueDate)
	}

	tasks := make([]models.Task, 0)
	if err := q.Order("id").Find(&tasks).Error; err != nil {
		logger.Error(ctx, "Failed to query tasks", "error", err)
		return nil, fmt.Errorf("could not query tasks: %w", err)
	}
	return tasks, nil
}

// FindByID は指定IDのタスクを返します。
func (r *TaskRepository) FindByID(ctx context.Context, id int) (*models.Task, error) {
	return findByID(r.db.WithContext(ctx), id)
}

// ToggleCompleted は completed を反転し、更新後のタスクを返します。
// 更新と再読込は1トランザクションで行います。
func (r *TaskRepository) ToggleCompleted(ctx context.Context, id int) (*models.Task, error) {
	var updated *models.Task
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Task{}).Where("id = ?", id).
			UpdateColumn("completed", gorm.Expr("NOT completed"))
		if res.Error != nil {
			return fmt.Errorf("could not toggle task: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		t, err := findByID(tx, id)
		if err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTaskNotFound) {
			logger.Error(ctx, "Failed to toggle task", "error", err, "id", id)
		}
		return nil, err
	}
	return updated, nil
}

// Delete は指定IDのタスクを削除します。
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Task{}, id)
	if res.Error != nil {
		logger.Error(ctx, "Failed to delete task", "error", res.Error, "id", id)
		return fmt.Errorf("could not delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func findByID(db *gorm.DB, id int) (*models.Task, error) {
	var t models.Task
	if err := db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("could not query task: %w", err)
	}
	return &t, nil
}

// foldedTitle は title を小文字化する SQL 式です。
// SQLite の LOWER は ASCII しか変換しないため、タイトルに使えるアクセント付き大文字は REPLACE で変換します。
var foldedTitle = func() string {
	expr := "LOWER(title)"
	for _, r := range "ÁÉÍÓÚÜÑ" {
		expr = fmt.Sprintf("REPLACE(%s, '%c', '%c')", expr, r, unicode.ToLower(r))
	}
	return expr
}()

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
