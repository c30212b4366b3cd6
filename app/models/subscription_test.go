package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientSubscriptionEntitles(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status SubscriptionStatus
		end    time.Time
		want   bool
	}{
		{"active ending next month", SubscriptionActive, today.AddDate(0, 1, 0), true},
		{"active ending today", SubscriptionActive, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"active ended yesterday", SubscriptionActive, today.AddDate(0, 0, -1), false},
		{"blocked with valid dates", SubscriptionBlocked, today.AddDate(0, 1, 0), false},
		{"expired with valid dates", SubscriptionExpired, today.AddDate(0, 1, 0), false},
		{"pending with valid dates", SubscriptionPending, today.AddDate(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &ClientSubscription{Status: tt.status, EndDate: tt.end}
			assert.Equal(t, tt.want, sub.Entitles(today))
		})
	}
}

func TestEquipmentWarranty(t *testing.T) {
	e := &Equipment{
		PurchaseDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		WarrantyMonths: 12,
	}

	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), e.WarrantyEnd())
	assert.True(t, e.UnderWarranty(time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.False(t, e.UnderWarranty(time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC)))
}
