package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestTranslateErrorUniqueViolations(t *testing.T) {
	tests := []struct {
		constraint string
		want       error
	}{
		{"training_participants_pkey", ErrAlreadyBooked},
		{"staff_inn_key", ErrDuplicateINN},
		{"staff_snils_key", ErrDuplicateSNILS},
		{"users_username_key", ErrDuplicateUsername},
		{"payments_client_subscription_id_key", ErrDuplicatePayment},
	}

	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			err := &pq.Error{Code: "23505", Constraint: tt.constraint}
			assert.ErrorIs(t, TranslateError(err), tt.want)
		})
	}
}

func TestTranslateErrorTriggerMessages(t *testing.T) {
	underage := &pq.Error{
		Code:    "P0001",
		Message: "validate_staff_age: staff must be at least 18 years old at hire date",
	}
	assert.ErrorIs(t, TranslateError(underage), ErrStaffUnderage)

	full := &pq.Error{
		Code:    "P0001",
		Message: "check_training_capacity: training is full",
	}
	assert.ErrorIs(t, TranslateError(full), ErrTrainingFull)
}

func TestTranslateErrorPassThrough(t *testing.T) {
	assert.NoError(t, TranslateError(nil))

	// Unknown constraint stays as-is.
	unknown := &pq.Error{Code: "23505", Constraint: "some_other_key"}
	assert.Equal(t, error(unknown), TranslateError(unknown))

	// Non-pq errors stay as-is, even wrapped.
	plain := errors.New("connection refused")
	assert.Equal(t, plain, TranslateError(plain))

	wrapped := fmt.Errorf("creating user: %w", &pq.Error{Code: "23505", Constraint: "users_username_key"})
	assert.ErrorIs(t, TranslateError(wrapped), ErrDuplicateUsername)
}

func TestIsBusinessError(t *testing.T) {
	assert.True(t, IsBusinessError(ErrAlreadyBooked))
	assert.True(t, IsBusinessError(fmt.Errorf("booking: %w", ErrTrainingFull)))
	assert.False(t, IsBusinessError(errors.New("disk on fire")))
	assert.False(t, IsBusinessError(nil))
}
