package models

import "fmt"

// SubscriptionStatus defines the lifecycle states of a client subscription.
type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionBlocked   SubscriptionStatus = "blocked"
	SubscriptionPending   SubscriptionStatus = "pending"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

var subscriptionStatuses = []SubscriptionStatus{
	SubscriptionActive, SubscriptionExpired, SubscriptionBlocked,
	SubscriptionPending, SubscriptionCancelled,
}

// ParseSubscriptionStatus maps a submitted status string onto the
// enumeration.
func ParseSubscriptionStatus(s string) (SubscriptionStatus, error) {
	for _, st := range subscriptionStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown subscription status %q", s)
}

// ParticipantStatus defines the states of a training booking.
type ParticipantStatus string

const (
	ParticipantPending   ParticipantStatus = "pending"
	ParticipantConfirmed ParticipantStatus = "confirmed"
	ParticipantCancelled ParticipantStatus = "cancelled"
)

// ContactType defines the kinds of client contact records.
type ContactType string

const (
	ContactPhone ContactType = "phone"
	ContactEmail ContactType = "email"
)
