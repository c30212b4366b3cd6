package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// StaffInput carries the onboarding form fields subject to validation.
// Digit-count rules live in the tags; the date rules the tag language
// cannot express are checked in ValidateStaffInput.
type StaffInput struct {
	LastName       string `validate:"required"`
	FirstName      string `validate:"required"`
	INN            string `validate:"required,len=12,numeric"`
	SNILS          string `validate:"required,len=11,numeric"`
	PassportSeries string `validate:"omitempty,len=4,numeric"`
	PassportNumber string `validate:"omitempty,len=6,numeric"`
	BirthDate      time.Time
	HireDate       time.Time
}

const adultAge = 18

// ValidateStaffInput enforces the onboarding rules before persistence:
// identifier formats, hire date not in the future, and age of at least 18
// on the hire date (the 18th birthday itself passes). Uniqueness of INN
// and SNILS stays with the storage layer.
func ValidateStaffInput(in StaffInput) error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fieldError(verrs[0])
		}
		return err
	}

	if in.BirthDate.IsZero() || in.HireDate.IsZero() {
		return errors.New("birth date and hire date are required")
	}
	if in.HireDate.After(time.Now()) {
		return errors.New("hire date cannot be in the future")
	}
	if in.BirthDate.AddDate(adultAge, 0, 0).After(in.HireDate) {
		return errors.New("staff member must be at least 18 years old at hire date")
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Field() {
	case "INN":
		return errors.New("INN must be exactly 12 digits")
	case "SNILS":
		return errors.New("SNILS must be exactly 11 digits")
	case "PassportSeries":
		return errors.New("passport series must be exactly 4 digits")
	case "PassportNumber":
		return errors.New("passport number must be exactly 6 digits")
	}
	return fmt.Errorf("field %s is invalid", fe.Field())
}
