package models

import "time"

// Equipment is an inventory item owned by a section. The warranty end
// date is derived, not stored.
type Equipment struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Model               *string    `json:"model,omitempty"`
	SectionID           string     `json:"section_id"`
	PurchaseDate        time.Time  `json:"purchase_date"`
	WarrantyMonths      int        `json:"warranty_months"`
	LastMaintenanceDate *time.Time `json:"last_maintenance_date,omitempty"`
	Quantity            int        `json:"quantity"`

	Section *Section `json:"section,omitempty"`
}

// WarrantyEnd returns the derived end-of-warranty date.
func (e *Equipment) WarrantyEnd() time.Time {
	return e.PurchaseDate.AddDate(0, e.WarrantyMonths, 0)
}

// UnderWarranty reports whether the item is still covered on the given day.
func (e *Equipment) UnderWarranty(today time.Time) bool {
	return !e.WarrantyEnd().Before(today)
}
