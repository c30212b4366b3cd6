package models

// User is a login identity linked to at most one of Client or Staff.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Role     Role    `json:"role"`
	ClientID *string `json:"client_id,omitempty"`
	StaffID  *string `json:"staff_id,omitempty"`

	Client *Client `json:"client,omitempty"`
	Staff  *Staff  `json:"staff,omitempty"`
}
