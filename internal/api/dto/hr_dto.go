package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     *float64  `json:"salary"`
	HireDate   time.Time `json:"hire_date"`
	Status     string    `json:"status"`
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
}

// UpdateEmployeeRequest payload. Absent fields stay untouched.
type UpdateEmployeeRequest struct {
	Name       *string    `json:"name"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	Department *string    `json:"department"`
	Position   *string    `json:"position"`
	Salary     *float64   `json:"salary"`
	HireDate   *time.Time `json:"hire_date"`
	Status     *string    `json:"status"`
	FirstName  *string    `json:"first_name"`
	LastName   *string    `json:"last_name"`
}

// EmployeeResponse HR record.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Department string    `json:"department"`
	Position   string    `json:"position"`
	Salary     *float64  `json:"salary"`
	HireDate   time.Time `json:"hire_date"`
	Status     string    `json:"status"`
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
	CreatedBy  *string   `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewEmployeeResponse maps an employee.
func NewEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		Phone:      e.Phone,
		Department: e.Department,
		Position:   e.Position,
		Salary:     e.Salary,
		HireDate:   e.HireDate,
		Status:     e.Status,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		CreatedBy:  e.CreatedBy,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
