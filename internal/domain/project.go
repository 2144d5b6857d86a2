package domain

import "time"

// Project is a tracked initiative with budget and progress.
type Project struct {
	ID          string
	Name        string
	Description *string
	Status      string
	StartDate   *time.Time
	EndDate     *time.Time
	Budget      *float64
	Progress    int
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// WorkOrder is a manufacturing order for a quantity of product.
type WorkOrder struct {
	ID          string
	WorkOrderID string
	Product     string
	Quantity    int
	Status      string
	StartDate   time.Time
	DueDate     time.Time
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
