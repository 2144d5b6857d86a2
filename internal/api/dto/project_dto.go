package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// CreateProjectRequest payload.
type CreateProjectRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      *float64   `json:"budget"`
	Progress    int        `json:"progress"`
}

// UpdateProjectRequest payload. Absent fields stay untouched.
type UpdateProjectRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      *float64   `json:"budget"`
	Progress    *int       `json:"progress"`
}

// ProjectResponse initiative record.
type ProjectResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Budget      *float64   `json:"budget"`
	Progress    int        `json:"progress"`
	CreatedBy   *string    `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProjectResponse maps a project.
func NewProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Budget:      p.Budget,
		Progress:    p.Progress,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreateWorkOrderRequest payload.
type CreateWorkOrderRequest struct {
	WorkOrderID string    `json:"work_order_id"`
	Product     string    `json:"product"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	DueDate     time.Time `json:"due_date"`
}

// UpdateWorkOrderRequest payload. Absent fields stay untouched.
type UpdateWorkOrderRequest struct {
	Product   *string    `json:"product"`
	Quantity  *int       `json:"quantity"`
	Status    *string    `json:"status"`
	StartDate *time.Time `json:"start_date"`
	DueDate   *time.Time `json:"due_date"`
}

// WorkOrderResponse manufacturing order.
type WorkOrderResponse struct {
	ID          string    `json:"id"`
	WorkOrderID string    `json:"work_order_id"`
	Product     string    `json:"product"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"start_date"`
	DueDate     time.Time `json:"due_date"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewWorkOrderResponse maps a work order.
func NewWorkOrderResponse(w *domain.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		ID:          w.ID,
		WorkOrderID: w.WorkOrderID,
		Product:     w.Product,
		Quantity:    w.Quantity,
		Status:      w.Status,
		StartDate:   w.StartDate,
		DueDate:     w.DueDate,
		CreatedBy:   w.CreatedBy,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
