package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_HTTPStatus_WithTaxonomyErrors_MapsToExpectedCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "permission denied maps to 403",
			err:      NewPermissionDenied("not a project member"),
			expected: http.StatusForbidden,
		},
		{
			name:     "invalid state transition maps to 422",
			err:      NewInvalidStateTransition("DRAFT", "APPROVED", ""),
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "conflict maps to 409",
			err:      NewConflict("entry status changed by another reviewer"),
			expected: http.StatusConflict,
		},
		{
			name:     "validation maps to 400",
			err:      NewValidation("hours must be greater than zero"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "not found maps to 404",
			err:      NewNotFound("time sheet"),
			expected: http.StatusNotFound,
		},
		{
			name:     "unknown error maps to 500",
			err:      errors.New("connection refused"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func Test_HTTPStatus_WithWrappedError_StillMatches(t *testing.T) {
	wrapped := fmt.Errorf("approving sheet: %w", NewInvalidStateTransition("SUBMITTED", "APPROVED", "entries questioned"))

	assert.Equal(t, http.StatusUnprocessableEntity, HTTPStatus(wrapped))
}

func Test_InvalidStateTransitionError_Message_CarriesBlockingReason(t *testing.T) {
	err := NewInvalidStateTransition("SUBMITTED", "APPROVED", "entries pending")

	assert.Contains(t, err.Error(), "SUBMITTED")
	assert.Contains(t, err.Error(), "entries pending")
}
