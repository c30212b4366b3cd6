package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plus with 11 digits", raw: "+79161234567", want: "+79161234567"},
		{name: "eight with 10 digits", raw: "89161234567", want: "89161234567"},
		{name: "formatting is stripped", raw: "+7 (916) 123-45-67", want: "+79161234567"},
		{name: "empty input is fine", raw: "", want: ""},
		{name: "whitespace only is fine", raw: "   ", want: ""},
		{name: "plus with too few digits", raw: "+7916123456", wantErr: true},
		{name: "eight with too many digits", raw: "891612345678", wantErr: true},
		{name: "bad leading digit", raw: "79161234567", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
