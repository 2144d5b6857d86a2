package domain

import "time"

// InventoryItem is a stock-keeping record. Status carries the stock-level
// classification ("in stock", "low stock", "out of stock").
type InventoryItem struct {
	ID        string
	Name      string
	Category  string
	Stock     int
	UnitPrice float64
	Supplier  string
	Status    string
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
