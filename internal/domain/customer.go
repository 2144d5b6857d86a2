package domain

import "time"

// Customer is a CRM customer record. Email is intentionally not a unique
// key here, unlike employees; see DESIGN.md.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Company   *string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalesLead tracks a prospective deal.
type SalesLead struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Company   *string
	Status    string
	Value     *float64
	Notes     *string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
