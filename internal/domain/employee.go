package domain

import "time"

// Employee is an HR record. EmployeeID is the caller-facing natural key and
// must be unique.
type Employee struct {
	ID         string
	EmployeeID string
	Name       string
	Email      string
	Phone      *string
	Department string
	Position   string
	Salary     *float64
	HireDate   time.Time
	Status     string
	FirstName  *string
	LastName   *string
	CreatedBy  *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
