package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomError_Unwrap(t *testing.T) {
	err := NewConflictError("email already exists")
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, "email already exists", err.Error())

	wrapped := fmt.Errorf("creating admin: %w", err)
	require.ErrorIs(t, wrapped, ErrConflict)
}

func TestNewFieldValidationError(t *testing.T) {
	err := NewFieldValidationError("capacity must be greater than zero", "capacity")
	require.ErrorIs(t, err, ErrValidationFailed)

	var ce *CustomError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, "capacity", ce.Field)
}

func TestMessage(t *testing.T) {
	require.Equal(t, "venue does not exist",
		Message(NewReferenceError("venue does not exist"), "fallback"))

	// Bare sentinels carry no contextual message.
	require.Equal(t, "fallback", Message(ErrConflict, "fallback"))
	require.Equal(t, "fallback", Message(errors.New("db exploded"), "fallback"))

	wrapped := fmt.Errorf("outer: %w", NewResourceNotFoundError("course not found"))
	require.Equal(t, "course not found", Message(wrapped, "fallback"))
}
