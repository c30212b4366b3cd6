package services

import (
	"errors"
	"strings"
)

// NormalizePhone strips formatting from a phone number and validates the
// two accepted shapes: '+' followed by 11 digits, or '8' followed by 10
// digits. Returns the cleaned number, or empty for empty input.
func NormalizePhone(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	var cleaned strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' || ch == '+' {
			cleaned.WriteRune(ch)
		}
	}
	phone := cleaned.String()

	switch {
	case strings.HasPrefix(phone, "+"):
		if len(phone) != 12 || !allDigits(phone[1:]) {
			return "", errors.New("phone format: '+' followed by 11 digits")
		}
	case strings.HasPrefix(phone, "8"):
		if len(phone) != 11 || !allDigits(phone) {
			return "", errors.New("phone format: '8' followed by 10 digits")
		}
	default:
		return "", errors.New("phone number must start with '+' or '8'")
	}
	return phone, nil
}

func allDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(s) > 0
}
