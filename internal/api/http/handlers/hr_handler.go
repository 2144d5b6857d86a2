package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// HRHandler covers employee records.
type HRHandler struct {
	employees repository.EmployeeRepository
}

// NewHRHandler constructs handler.
func NewHRHandler(employees repository.EmployeeRepository) *HRHandler {
	return &HRHandler{employees: employees}
}

// CreateEmployee POST /employees.
func (h *HRHandler) CreateEmployee(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.EmployeeID == "" || req.Name == "" || req.Email == "" {
		return apperrors.NewValidationError("employee_id, name and email required", nil)
	}
	if req.Status == "" {
		req.Status = "active"
	}

	taken, err := h.employees.ExistsByEmployeeID(c.Context(), req.EmployeeID)
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("employee id already exists", fiber.Map{"employee_id": req.EmployeeID})
	}

	employee := &domain.Employee{
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Status:     req.Status,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		CreatedBy:  actorRef(principal),
	}
	if err := h.employees.Create(c.Context(), employee); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// ListEmployees GET /employees.
func (h *HRHandler) ListEmployees(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	employees, err := h.employees.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.NewEmployeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetEmployee GET /employees/:id.
func (h *HRHandler) GetEmployee(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	employee, err := h.employees.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// UpdateEmployee PUT /employees/:id.
func (h *HRHandler) UpdateEmployee(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	employee, err := h.employees.Update(c.Context(), c.Params("id"), repository.EmployeeUpdate{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Department: req.Department,
		Position:   req.Position,
		Salary:     req.Salary,
		HireDate:   req.HireDate,
		Status:     req.Status,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewEmployeeResponse(employee)})
}

// DeleteEmployee DELETE /employees/:id.
func (h *HRHandler) DeleteEmployee(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.employees.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "employee deleted"}})
}
