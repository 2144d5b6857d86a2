package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// InventoryHandler covers stock records.
type InventoryHandler struct {
	items repository.InventoryRepository
}

// NewInventoryHandler constructs handler.
func NewInventoryHandler(items repository.InventoryRepository) *InventoryHandler {
	return &InventoryHandler{items: items}
}

// CreateItem POST /inventory.
func (h *InventoryHandler) CreateItem(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Name == "" {
		return apperrors.NewValidationError("name required", nil)
	}
	if req.Status == "" {
		req.Status = "in stock"
	}

	item := &domain.InventoryItem{
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		UnitPrice: req.UnitPrice,
		Supplier:  req.Supplier,
		Status:    req.Status,
		CreatedBy: actorRef(principal),
	}
	if err := h.items.Create(c.Context(), item); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// ListItems GET /inventory.
func (h *InventoryHandler) ListItems(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	records, err := h.items.List(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.InventoryItemResponse, 0, len(records))
	for i := range records {
		items = append(items, dto.NewInventoryItemResponse(&records[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// GetItem GET /inventory/:id.
func (h *InventoryHandler) GetItem(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	item, err := h.items.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// UpdateItem PUT /inventory/:id.
func (h *InventoryHandler) UpdateItem(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateInventoryItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.items.Update(c.Context(), c.Params("id"), repository.InventoryItemUpdate{
		Name:      req.Name,
		Category:  req.Category,
		Stock:     req.Stock,
		UnitPrice: req.UnitPrice,
		Supplier:  req.Supplier,
		Status:    req.Status,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewInventoryItemResponse(item)})
}

// DeleteItem DELETE /inventory/:id.
func (h *InventoryHandler) DeleteItem(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.items.Delete(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "item deleted"}})
}
