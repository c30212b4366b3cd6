package services

import "errors"

// ValidateClientName rejects blank required name fields. Every form that
// writes a client row, whether staff-facing or the client's own profile,
// runs through it so an edit cannot blank out a previously valid name.
func ValidateClientName(lastName, firstName string) error {
	if lastName == "" || firstName == "" {
		return errors.New("last name and first name are required")
	}
	return nil
}
