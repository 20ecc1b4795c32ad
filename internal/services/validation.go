package services

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"task-manager/backend/internal/models"
)

const (
	letters = `a-zA-Z0-9áéíóúüÁÉÍÓÚÜñÑ`
	// RE2 の \s は ASCII のみなので、ノーブレークスペース等の Zs も許可する
	spaces = `\s\p{Zs}`
)

var (
	titlePattern       = regexp.MustCompile(`^[` + letters + spaces + `.,\-]{3,100}$`)
	descriptionPattern = regexp.MustCompile(`^[` + letters + spaces + `.,!?()\-]{0,255}$`)

	sanitizer = bluemonday.StrictPolicy()
)

// sanitize は前後の空白を除去し、HTMLをエスケープした文字列を返します。
// タグが含まれていた場合（除去でテキストが変わる場合）は ok=false です。
func sanitize(s string) (escaped string, ok bool) {
	s = strings.TrimSpace(s)
	escaped = html.EscapeString(s)
	return escaped, sanitizer.Sanitize(s) == escaped
}

func validateTitle(title string, clean bool) error {
	if !clean || !titlePattern.MatchString(title) {
		return newValidationError("title", "invalid title (3-100 characters: letters, numbers, spaces and . , -)")
	}
	return nil
}

func validateDescription(description string, clean bool) error {
	if !clean || (description != "" && !descriptionPattern.MatchString(description)) {
		return newValidationError("description", "invalid description (max 255 characters: letters, numbers, spaces and . , - ! ? ( ))")
	}
	return nil
}

func validatePriority(p models.Priority) error {
	if !p.Valid() {
		return newValidationError("priority", "invalid priority (low, medium or high)")
	}
	return nil
}

func validateDueDate(due, today models.Date) error {
	if due.IsZero() {
		return newValidationError("due_date", "due_date is required")
	}
	if !due.After(today) {
		return newValidationError("due_date", "due_date must be in the future")
	}
	return nil
}
