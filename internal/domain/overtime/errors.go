package overtime

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrValidation        = errors.New("validation failed")
	ErrSummariesNotFound = errors.New("no attendance summaries found for this period")
	ErrMissingClaims     = errors.New("company claim is missing from token")

	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrManagerAccessRequired = errors.New("manager access required")
)

// ErrorKind tags an Error as a malformed argument or an invalid request.
type ErrorKind string

const (
	KindInvalidInput ErrorKind = "invalid_input"
	KindValidation   ErrorKind = "validation"
)

// Error carries the offending field and value. It matches ErrInvalidInput or
// ErrValidation under errors.Is depending on Kind.
type Error struct {
	Kind    ErrorKind
	Field   string
	Value   any
	Message string
}

func (e *Error) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s (got %v)", e.Kind, e.Field, e.Message, e.Value)
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.Kind == KindInvalidInput
	case ErrValidation:
		return e.Kind == KindValidation
	}
	return false
}

// Details returns the field-to-message map used in error responses.
func (e *Error) Details() map[string]string {
	field := e.Field
	if field == "" {
		field = string(e.Kind)
	}
	return map[string]string{field: fmt.Sprintf("%s (got %v)", e.Message, e.Value)}
}

func NewInvalidInput(field string, value any, message string) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Value: value, Message: message}
}

func NewValidationError(field string, value any, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Value: value, Message: message}
}
