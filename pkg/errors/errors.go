package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNotAuthorized    = errors.New("not authorized")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrInvalidState     = errors.New("operation not allowed in current state")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")

	ErrAccountNotFound      = fmt.Errorf("account %w", ErrNotFound)
	ErrAccountAlreadyExists = fmt.Errorf("account %w", ErrConflict)

	ErrInvalidInput = errors.New("invalid input data")
)

const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeNotAuthorized = "NOT_AUTHORIZED"
	CodeWeakPassword  = "WEAK_PASSWORD"
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Forbidden reports a failed role or ownership check with a descriptive message.
func Forbidden(message string) *AppError {
	return NewAppError(CodeNotAuthorized, message, ErrNotAuthorized)
}

// Validation wraps a validator error so it surfaces as a ValidationFailure.
func Validation(message string, err error) *AppError {
	return NewAppError(CodeValidation, message, err)
}

// IsValidation reports whether err is a ValidationFailure.
func IsValidation(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeValidation || appErr.Code == CodeWeakPassword
	}
	return false
}
