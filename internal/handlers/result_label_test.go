package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"task-manager/backend/internal/repositories"
	"task-manager/backend/internal/services"
)

func TestResultLabel(t *testing.T) {
	assert.Equal(t, "ok", resultLabel(nil))
	assert.Equal(t, "not_found", resultLabel(fmt.Errorf("wrap: %w", repositories.ErrTaskNotFound)))
	assert.Equal(t, "invalid", resultLabel(&services.ValidationError{Field: "title", Message: "bad"}))
	assert.Equal(t, "error", resultLabel(errors.New("boom")))
}
