package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError is a domain-level failure carrying a stable code, the message shown
// to the caller, and the original error (kept for logs, never sent out).
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("code: %d, message: %s, original_error: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code: %d, message: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

var (
	ErrAccountExists      = New(1001, "account with this email already exists", nil)
	ErrAccountNotFound    = New(1002, "no account with this email", nil)
	ErrInvalidCode        = New(1003, "invalid verification code", nil)
	ErrInvalidCredentials = New(1004, "invalid email or password", nil)
	ErrNotVerified        = New(1005, "email is not verified", nil)
	ErrNotFound           = New(1006, "resource not found", nil)
	ErrInvalidInput       = New(1007, "invalid input parameters", nil)
	ErrInternal           = New(1008, "internal server error", nil)
)

func Is(err error, target *AppError) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == target.Code
}

// StatusOf maps a domain error onto the HTTP status the handlers respond with.
// Anything that is not an AppError is an infrastructure failure and stays a 500.
func StatusOf(err error) int {
	switch {
	case Is(err, ErrAccountExists):
		return fiber.StatusConflict
	case Is(err, ErrAccountNotFound), Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case Is(err, ErrInvalidCode), Is(err, ErrInvalidCredentials), Is(err, ErrInvalidInput):
		return fiber.StatusBadRequest
	case Is(err, ErrNotVerified):
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// MessageOf returns the caller-facing message for an error. Infrastructure
// failures collapse into the generic internal message so no detail leaks.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != ErrInternal.Code {
		return appErr.Message
	}
	return ErrInternal.Message
}
