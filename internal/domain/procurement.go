package domain

import "time"

// Supplier is a vendor record referenced by purchase orders.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PurchaseOrder tracks an order placed with a supplier.
type PurchaseOrder struct {
	ID               string
	PONumber         string
	SupplierID       *string
	Status           string
	TotalAmount      float64
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	Notes            *string
	CreatedBy        *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
