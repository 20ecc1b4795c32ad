// Package modelsはTaskを定義します。
package models

import (
	"time"
)

// Priority はタスクの優先度です。
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid は優先度が low / medium / high のいずれかであるかを返します。
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task は tasks テーブルの1行を表します。
type Task struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Title       string    `json:"title" gorm:"size:100;not null"`
	Description string    `json:"description" gorm:"size:255;not null;default:''"`
	Priority    Priority  `json:"priority" gorm:"type:varchar(10);not null;index"`
	DueDate     Date      `json:"due_date" gorm:"type:date;not null;index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"` // INSERT時に一度だけ設定
	Completed   bool      `json:"completed" gorm:"not null;default:false"`
}

// TableName はgormが使うテーブル名を返します。
func (Task) TableName() string {
	return "tasks"
}

// TaskCreateRequest は POST /tasks/ のリクエストボディです。
type TaskCreateRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description *string  `json:"description"`
	Priority    Priority `json:"priority" binding:"required"`
	DueDate     Date     `json:"due_date"`
}

// TaskSearchQuery は GET /tasks/search のクエリパラメータです。
type TaskSearchQuery struct {
	Title   string `form:"title"`
	DueDate string `form:"due_date"`
}
