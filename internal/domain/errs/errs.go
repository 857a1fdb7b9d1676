// Package errs holds the error kinds shared by every domain package.
// Domain packages wrap these with their own messages, handlers classify with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
)

// DomainError несёт человекочитаемое сообщение поверх одного из базовых видов ошибок.
type DomainError struct {
	Err     error
	Message string
}

func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// New returns a DomainError of the given kind.
func New(kind error, message string) error {
	return &DomainError{Err: kind, Message: message}
}

// Invalid is shorthand for an ErrInvalidInput with a formatted message.
func Invalid(format string, args ...any) error {
	return &DomainError{Err: ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}
