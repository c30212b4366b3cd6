package models

import "time"

// Status is the shared lookup table behind subscription and booking states.
type Status struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// SubscriptionType is a purchasable plan granting access to a set of
// group trainings via the training_subscription_access join table.
type SubscriptionType struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Cost        float64 `json:"cost"`
	Description *string `json:"description,omitempty"`
}

// ClientSubscription is one client holding a subscription type for a date
// range. Exactly one payment may reference it.
type ClientSubscription struct {
	ID                 string             `json:"id"`
	ClientID           string             `json:"client_id"`
	SubscriptionTypeID string             `json:"subscription_type_id"`
	StartDate          time.Time          `json:"start_date"`
	EndDate            time.Time          `json:"end_date"`
	Status             SubscriptionStatus `json:"status"`

	Client           *Client           `json:"client,omitempty"`
	SubscriptionType *SubscriptionType `json:"subscription_type,omitempty"`
	Payment          *Payment          `json:"payment,omitempty"`
}

// Entitles reports whether the subscription grants access on the given day:
// status active and not yet past its end date.
func (s *ClientSubscription) Entitles(today time.Time) bool {
	return s.Status == SubscriptionActive && !s.EndDate.Before(truncateToDay(today))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// PaymentMethod is a reference table (cash, card).
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Payment is one row per client subscription, immutable once created.
type Payment struct {
	ID                   string    `json:"id"`
	ClientSubscriptionID string    `json:"client_subscription_id"`
	Amount               float64   `json:"amount"`
	Date                 time.Time `json:"date"`
	MethodID             string    `json:"method_id"`

	ClientSubscription *ClientSubscription `json:"client_subscription,omitempty"`
	Method             *PaymentMethod      `json:"method,omitempty"`
}
