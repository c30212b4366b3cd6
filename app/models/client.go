package models

import "time"

// Client is a club member. Deleting a client cascades to subscriptions,
// bookings, warnings, contacts and the linked login user.
type Client struct {
	ID         string    `json:"id"`
	LastName   string    `json:"last_name"`
	FirstName  string    `json:"first_name"`
	MiddleName *string   `json:"middle_name,omitempty"`
	RegDate    time.Time `json:"reg_date"`
	Discount   float64   `json:"discount"`

	Contacts      []*ClientContact      `json:"contacts,omitempty"`
	Subscriptions []*ClientSubscription `json:"subscriptions,omitempty"`
	Warnings      []*Warning            `json:"warnings,omitempty"`
}

// FullName is used by the dashboard tables.
func (c *Client) FullName() string {
	name := c.LastName + " " + c.FirstName
	if c.MiddleName != nil && *c.MiddleName != "" {
		name += " " + *c.MiddleName
	}
	return name
}

// Contact looks up a contact value by type, empty when absent.
func (c *Client) Contact(t ContactType) string {
	for _, contact := range c.Contacts {
		if contact.ContactType == t {
			return contact.ContactValue
		}
	}
	return ""
}

// Phone and Email are template-friendly wrappers around Contact.
func (c *Client) Phone() string { return c.Contact(ContactPhone) }

func (c *Client) Email() string { return c.Contact(ContactEmail) }

// ClientContact is one contact record per (client, type) pair.
type ClientContact struct {
	ClientID     string      `json:"client_id"`
	ContactType  ContactType `json:"contact_type"`
	ContactValue string      `json:"contact_value"`
}

// Warning is a disciplinary record issued by a staff member.
type Warning struct {
	ID       int       `json:"id"`
	ClientID string    `json:"client_id"`
	StaffID  string    `json:"staff_id"`
	Date     time.Time `json:"date"`
	Reason   string    `json:"reason"`

	Client *Client `json:"client,omitempty"`
	Staff  *Staff  `json:"staff,omitempty"`
}
