package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// ProcurementHandler covers suppliers and purchase orders.
type ProcurementHandler struct {
	suppliers repository.SupplierRepository
	orders    repository.PurchaseOrderRepository
}

// NewProcurementHandler constructs handler.
func NewProcurementHandler(suppliers repository.SupplierRepository, orders repository.PurchaseOrderRepository) *ProcurementHandler {
	return &ProcurementHandler{suppliers: suppliers, orders: orders}
}

// CreateSupplier POST /vendors.
func (h *ProcurementHandler) CreateSupplier(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}

	supplier := &domain.Supplier{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		CreatedBy:     actorRef(principal),
	}
	if err := h.suppliers.Create(c.Context(), supplier); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewSupplierResponse(supplier)})
}

// ListSuppliers GET /vendors.
func (h *ProcurementHandler) ListSuppliers(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	suppliers, err := h.suppliers.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		items = append(items, dto.NewSupplierResponse(&suppliers[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetSupplier GET /vendors/:id.
func (h *ProcurementHandler) GetSupplier(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	supplier, err := h.suppliers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSupplierResponse(supplier)})
}

// UpdateSupplier PUT /vendors/:id.
func (h *ProcurementHandler) UpdateSupplier(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateSupplierRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	supplier, err := h.suppliers.Update(c.Context(), c.Params("id"), repository.SupplierUpdate{
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewSupplierResponse(supplier)})
}

// DeleteSupplier DELETE /vendors/:id.
func (h *ProcurementHandler) DeleteSupplier(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.suppliers.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "supplier deleted"}})
}

// CreatePurchaseOrder POST /purchase-orders.
func (h *ProcurementHandler) CreatePurchaseOrder(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PONumber == "" {
		return apperrors.NewValidationError("po_number required", nil)
	}
	if req.Status == "" {
		req.Status = "pending"
	}

	taken, err := h.orders.ExistsByPONumber(c.Context(), req.PONumber)
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("po number already exists", fiber.Map{"po_number": req.PONumber})
	}

	po := &domain.PurchaseOrder{
		PONumber:         req.PONumber,
		SupplierID:       req.SupplierID,
		Status:           req.Status,
		TotalAmount:      req.TotalAmount,
		OrderDate:        req.OrderDate,
		ExpectedDelivery: req.ExpectedDelivery,
		Notes:            req.Notes,
		CreatedBy:        actorRef(principal),
	}
	if err := h.orders.Create(c.Context(), po); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewPurchaseOrderResponse(po)})
}

// ListPurchaseOrders GET /purchase-orders.
func (h *ProcurementHandler) ListPurchaseOrders(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	orders, err := h.orders.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, dto.NewPurchaseOrderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetPurchaseOrder GET /purchase-orders/:id.
func (h *ProcurementHandler) GetPurchaseOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	po, err := h.orders.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewPurchaseOrderResponse(po)})
}

// UpdatePurchaseOrder PUT /purchase-orders/:id.
func (h *ProcurementHandler) UpdatePurchaseOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdatePurchaseOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	po, err := h.orders.Update(c.Context(), c.Params("id"), repository.PurchaseOrderUpdate{
		SupplierID:       req.SupplierID,
		Status:           req.Status,
		TotalAmount:      req.TotalAmount,
		OrderDate:        req.OrderDate,
		ExpectedDelivery: req.ExpectedDelivery,
		Notes:            req.Notes,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewPurchaseOrderResponse(po)})
}

// DeletePurchaseOrder DELETE /purchase-orders/:id.
func (h *ProcurementHandler) DeletePurchaseOrder(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.orders.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "purchase order deleted"}})
}
