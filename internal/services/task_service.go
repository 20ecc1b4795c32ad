package services

import (
	"context"
	"strings"
	"time"

	"task-manager/backend/internal/models"
	"task-manager/backend/internal/repositories"
)

// 検索で受け付ける日付形式
const (
	isoDateLayout = "2006-1-2"
	dmyDateLayout = "2/1/2006"
)

// TaskRepository は TaskService が必要とする永続化操作です。
type TaskRepository interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	Search(ctx context.Context, filter repositories.TaskFilter) ([]models.Task, error)
	ToggleCompleted(ctx context.Context, id int) (*models.Task, error)
	Delete(ctx context.Context, id int) error
}

// TaskService はTask関連のビジネスロジックを扱います。
type TaskService struct {
	repo TaskRepository
	now  func() time.Time
}

// NewTaskService は新しいTaskServiceを作成します。
func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo, now: time.Now}
}

// WithClock は「今日」の判定に使う時計を差し替えた TaskService を返します。
func (s *TaskService) WithClock(now func() time.Time) *TaskService {
	return &TaskService{repo: s.repo, now: now}
}

// CreateTask は入力を無害化・検証してからタスクを作成します。
func (s *TaskService) CreateTask(ctx context.Context, req *models.TaskCreateRequest) (*models.Task, error) {
	title, titleClean := sanitize(req.Title)
	description, descriptionClean := "", true
	if req.Description != nil {
		description, descriptionClean = sanitize(*req.Description)
	}

	if err := validateTitle(title, titleClean); err != nil {
		return nil, err
	}
	if err := validateDescription(description, descriptionClean); err != nil {
		return nil, err
	}
	if err := validatePriority(req.Priority); err != nil {
		return nil, err
	}
	if err := validateDueDate(req.DueDate, models.DateOf(s.now())); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &models.Task{
		Title:       title,
		Description: description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		Completed:   false,
	})
}

// ListTasks はすべてのタスクを返します。
func (s *TaskService) ListTasks(ctx context.Context) ([]models.Task, error) {
	return s.repo.FindAll(ctx)
}

// SearchTasks はタイトル（部分一致・大文字小文字無視）と期日（完全一致）で検索します。
// 空文字の条件は指定なしとして扱います。
func (s *TaskService) SearchTasks(ctx context.Context, title, dueDate string) ([]models.Task, error) {
	var filter repositories.TaskFilter
	if strings.TrimSpace(title) != "" {
		filter.Title, _ = sanitize(title)
	}
	if dueDate = strings.TrimSpace(dueDate); dueDate != "" {
		d, err := ParseSearchDate(dueDate)
		if err != nil {
			return nil, err
		}
		filter.DueDate = d
	}
	return s.repo.Search(ctx, filter)
}

// ToggleTask は completed を反転します。
func (s *TaskService) ToggleTask(ctx context.Context, id int) (*models.Task, error) {
	return s.repo.ToggleCompleted(ctx, id)
}

// DeleteTask はタスクを削除します。
func (s *TaskService) DeleteTask(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// ParseSearchDate は "YYYY-MM-DD" または "D/M/YYYY" を解釈します。
// "-" を含む場合は ISO 形式として扱います。
func ParseSearchDate(value string) (models.Date, error) {
	layout := dmyDateLayout
	if strings.Contains(value, "-") {
		layout = isoDateLayout
	}
	d, err := models.ParseDate(layout, value)
	if err != nil {
		return models.Date{}, newValidationError("due_date", "invalid date format, use YYYY-MM-DD or D/M/YYYY")
	}
	return d, nil
}
