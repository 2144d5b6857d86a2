package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// CRMHandler covers customers and sales leads.
type CRMHandler struct {
	customers repository.CustomerRepository
	leads     repository.SalesLeadRepository
}

// NewCRMHandler constructs handler.
func NewCRMHandler(customers repository.CustomerRepository, leads repository.SalesLeadRepository) *CRMHandler {
	return &CRMHandler{customers: customers, leads: leads}
}

// CreateCustomer POST /customers.
func (h *CRMHandler) CreateCustomer(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}

	customer := &domain.Customer{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		CreatedBy: actorRef(principal),
	}
	if err := h.customers.Create(c.Context(), customer); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewCustomerResponse(customer)})
}

// ListCustomers GET /customers.
func (h *CRMHandler) ListCustomers(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	customers, err := h.customers.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		items = append(items, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetCustomer GET /customers/:id.
func (h *CRMHandler) GetCustomer(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	customer, err := h.customers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCustomerResponse(customer)})
}

// UpdateCustomer PUT /customers/:id.
func (h *CRMHandler) UpdateCustomer(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	customer, err := h.customers.Update(c.Context(), c.Params("id"), repository.CustomerUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewCustomerResponse(customer)})
}

// DeleteCustomer DELETE /customers/:id.
func (h *CRMHandler) DeleteCustomer(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.customers.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "customer deleted"}})
}

// CreateLead POST /sales.
func (h *CRMHandler) CreateLead(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateSalesLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" || req.Email == "" {
		return apperrors.NewValidationError("name and email required", nil)
	}
	if req.Status == "" {
		req.Status = "new"
	}

	lead := &domain.SalesLead{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Status:    req.Status,
		Value:     req.Value,
		Notes:     req.Notes,
		CreatedBy: actorRef(principal),
	}
	if err := h.leads.Create(c.Context(), lead); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSalesLeadResponse(lead)})
}

// ListLeads GET /sales.
func (h *CRMHandler) ListLeads(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	leads, err := h.leads.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.SalesLeadResponse, 0, len(leads))
	for i := range leads {
		items = append(items, dto.NewSalesLeadResponse(&leads[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetLead GET /sales/:id.
func (h *CRMHandler) GetLead(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	lead, err := h.leads.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSalesLeadResponse(lead)})
}

// UpdateLead PUT /sales/:id.
func (h *CRMHandler) UpdateLead(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateSalesLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	lead, err := h.leads.Update(c.Context(), c.Params("id"), repository.SalesLeadUpdate{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
		Status:  req.Status,
		Value:   req.Value,
		Notes:   req.Notes,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSalesLeadResponse(lead)})
}

// DeleteLead DELETE /sales/:id.
func (h *CRMHandler) DeleteLead(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.leads.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "lead deleted"}})
}
