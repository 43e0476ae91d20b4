package service

import "fmt"

// The handler boundary maps these onto HTTP statuses: NotFoundError to 404,
// ValidationError to 400, UnauthorizedError to 401. Anything else from a
// collaborator surfaces as a 500 with the underlying message attached.

type NotFoundError struct{ msg string }

func (e *NotFoundError) Error() string { return e.msg }

// NotFoundf builds a NotFoundError with a formatted message.
func NotFoundf(format string, args ...any) error {
	return &NotFoundError{msg: fmt.Sprintf(format, args...)}
}

type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

// Validationf builds a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

type UnauthorizedError struct{ msg string }

func (e *UnauthorizedError) Error() string { return e.msg }

// Unauthorizedf builds an UnauthorizedError with a formatted message.
func Unauthorizedf(format string, args ...any) error {
	return &UnauthorizedError{msg: fmt.Sprintf(format, args...)}
}
