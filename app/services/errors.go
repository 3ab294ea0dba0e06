package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Sentinel kinds. Controllers map them to HTTP statuses with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("duplicate email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrValidation         = errors.New("validation failed")
)

// Error pairs a sentinel kind with the message shown to the client.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// PublicMessage returns the client-facing message carried by err, if any.
func PublicMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}

// notFoundOr converts gorm's record-not-found into ErrNotFound with msg and
// wraps every other error with op.
func notFoundOr(err error, op, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &Error{Kind: ErrNotFound, Message: msg}
	}
	return fmt.Errorf("%s: %w", op, err)
}
