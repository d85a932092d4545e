package serverutils

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status alongside a user-safe message. Services
// return these for conditions the client must see; everything else surfaces
// as a generic 500.
type AppError struct {
	StatusCode int
	Message    string
	Err        error
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

func NewNotFoundError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusNotFound, Message: message}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusBadRequest, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusUnauthorized, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{StatusCode: fiber.StatusConflict, Message: message}
}

// NewPersistenceError wraps a repository/transaction failure. The underlying
// error is kept for logs but never sent to the client.
func NewPersistenceError(message string, err error) *AppError {
	return &AppError{StatusCode: fiber.StatusInternalServerError, Message: message, Err: err}
}
