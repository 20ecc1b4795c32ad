package services

import "errors"

// ValidationError は入力がポリシーに反する場合のエラーです。HTTP では 400 になります。
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError は err が ValidationError を含むかどうかを返します。
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
