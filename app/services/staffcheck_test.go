package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validStaffInput() StaffInput {
	return StaffInput{
		LastName:       "Sokolov",
		FirstName:      "Dmitry",
		INN:            "123456789012",
		SNILS:          "12345678901",
		PassportSeries: "4509",
		PassportNumber: "123456",
		BirthDate:      time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		HireDate:       time.Date(2020, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestValidateStaffInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StaffInput)
		wantErr string
	}{
		{
			name:   "valid input passes",
			mutate: func(in *StaffInput) {},
		},
		{
			name:    "INN too short",
			mutate:  func(in *StaffInput) { in.INN = "12345678901" },
			wantErr: "INN must be exactly 12 digits",
		},
		{
			name:    "INN with letters",
			mutate:  func(in *StaffInput) { in.INN = "12345678901a" },
			wantErr: "INN must be exactly 12 digits",
		},
		{
			name:    "SNILS too long",
			mutate:  func(in *StaffInput) { in.SNILS = "123456789012" },
			wantErr: "SNILS must be exactly 11 digits",
		},
		{
			name:    "passport series wrong length",
			mutate:  func(in *StaffInput) { in.PassportSeries = "45" },
			wantErr: "passport series must be exactly 4 digits",
		},
		{
			name:    "passport number with letters",
			mutate:  func(in *StaffInput) { in.PassportNumber = "12345x" },
			wantErr: "passport number must be exactly 6 digits",
		},
		{
			name: "empty passport fields are allowed",
			mutate: func(in *StaffInput) {
				in.PassportSeries = ""
				in.PassportNumber = ""
			},
		},
		{
			name:    "hire date in the future",
			mutate:  func(in *StaffInput) { in.HireDate = time.Now().AddDate(0, 0, 1) },
			wantErr: "hire date cannot be in the future",
		},
		{
			name: "seventeen at hire date",
			mutate: func(in *StaffInput) {
				in.BirthDate = time.Date(2003, 1, 16, 0, 0, 0, 0, time.UTC)
			},
			wantErr: "staff member must be at least 18 years old at hire date",
		},
		{
			name: "exactly eighteen at hire date passes",
			mutate: func(in *StaffInput) {
				in.BirthDate = time.Date(2002, 1, 15, 0, 0, 0, 0, time.UTC)
			},
		},
		{
			name:    "missing last name",
			mutate:  func(in *StaffInput) { in.LastName = "" },
			wantErr: "field LastName is invalid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validStaffInput()
			tt.mutate(&in)

			err := ValidateStaffInput(in)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
