package database

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Known business-rule violations, recognised from storage errors so
// handlers can show a specific message instead of "database error".
var (
	ErrAlreadyBooked     = errors.New("client is already booked for this training")
	ErrTrainingFull      = errors.New("training has reached its participant limit")
	ErrDuplicateINN      = errors.New("staff member with this INN already exists")
	ErrDuplicateSNILS    = errors.New("staff member with this SNILS already exists")
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrDuplicatePayment  = errors.New("this subscription is already paid")
	ErrStaffUnderage     = errors.New("staff member must be at least 18 years old at hire date")
)

// uniqueViolation is PostgreSQL error code 23505, raiseException is the
// code plpgsql RAISE EXCEPTION produces (our triggers).
const (
	uniqueViolation = "23505"
	raiseException  = "P0001"
)

// TranslateError pattern-matches a storage error against the known
// constraint and trigger names and returns the matching business error.
// Anything unrecognised is returned unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case uniqueViolation:
		switch pqErr.Constraint {
		case "training_participants_pkey":
			return ErrAlreadyBooked
		case "staff_inn_key":
			return ErrDuplicateINN
		case "staff_snils_key":
			return ErrDuplicateSNILS
		case "users_username_key":
			return ErrDuplicateUsername
		case "payments_client_subscription_id_key":
			return ErrDuplicatePayment
		}
	case raiseException:
		msg := strings.ToLower(pqErr.Message)
		if strings.Contains(msg, "validate_staff_age") {
			return ErrStaffUnderage
		}
		if strings.Contains(msg, "check_training_capacity") {
			return ErrTrainingFull
		}
	}
	return err
}

// IsBusinessError reports whether err is one of the translated
// business-rule violations, i.e. safe to show to the user verbatim.
func IsBusinessError(err error) bool {
	for _, known := range []error{
		ErrAlreadyBooked, ErrTrainingFull, ErrDuplicateINN, ErrDuplicateSNILS,
		ErrDuplicateUsername, ErrDuplicatePayment, ErrStaffUnderage,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
