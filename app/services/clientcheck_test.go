package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateClientName(t *testing.T) {
	tests := []struct {
		name      string
		lastName  string
		firstName string
		wantErr   string
	}{
		{"both present", "Ivanova", "Anna", ""},
		{"blank last name", "", "Anna", "last name and first name are required"},
		{"blank first name", "Ivanova", "", "last name and first name are required"},
		{"both blank", "", "", "last name and first name are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClientName(tt.lastName, tt.firstName)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
