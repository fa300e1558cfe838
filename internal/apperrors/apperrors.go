package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// PermissionDeniedError means the actor lacks the required role or capability.
type PermissionDeniedError struct {
	Reason string
}

func (e *PermissionDeniedError) Error() string {
	return fmt.Sprintf("permission denied: %s", e.Reason)
}

func NewPermissionDenied(reason string) error {
	return &PermissionDeniedError{Reason: reason}
}

// InvalidStateTransitionError means the requested transition does not exist
// from the current state, or a structural precondition blocks it.
type InvalidStateTransitionError struct {
	From   string
	To     string
	Reason string
}

func (e *InvalidStateTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot transition from %s to %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func NewInvalidStateTransition(from, to, reason string) error {
	return &InvalidStateTransitionError{From: from, To: to, Reason: reason}
}

// ConflictError means a concurrent modification was detected at the
// persistence boundary (state changed between read and conditional write).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func NewConflict(message string) error {
	return &ConflictError{Message: message}
}

// ValidationError means the input was malformed or violates an invariant.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(message string) error {
	return &ValidationError{Message: message}
}

// NotFoundError means a referenced record does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

// HTTPStatus maps taxonomy errors to response codes. Unknown errors map to
// 500 so infrastructure failures are never presented as user mistakes.
func HTTPStatus(err error) int {
	var (
		permissionDenied  *PermissionDeniedError
		invalidTransition *InvalidStateTransitionError
		conflict          *ConflictError
		validation        *ValidationError
		notFound          *NotFoundError
	)

	switch {
	case errors.As(err, &permissionDenied):
		return http.StatusForbidden
	case errors.As(err, &invalidTransition):
		return http.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		return http.StatusConflict
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
