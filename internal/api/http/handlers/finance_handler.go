package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/erp-backend/internal/api/dto"
	"github.com/spec-kit/erp-backend/internal/domain"
	"github.com/spec-kit/erp-backend/internal/repository"
	apperrors "github.com/spec-kit/erp-backend/pkg/util"
)

// FinanceHandler covers transactions, invoices and expenses. Finance list
// endpoints wrap their collections in an items/total envelope because the
// dashboards page through them.
type FinanceHandler struct {
	finance repository.FinanceRepository
}

// NewFinanceHandler constructs handler.
func NewFinanceHandler(finance repository.FinanceRepository) *FinanceHandler {
	return &FinanceHandler{finance: finance}
}

// CreateTransaction POST /finance/transactions.
func (h *FinanceHandler) CreateTransaction(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Type == "" || req.Category == "" {
		return apperrors.NewValidationError("type and category required", nil)
	}

	tx := &domain.Transaction{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Reference:   req.Reference,
		CreatedBy:   actorRef(principal),
	}
	if err := h.finance.CreateTransaction(c.Context(), tx); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTransactionResponse(tx)})
}

// ListTransactions GET /finance/transactions.
func (h *FinanceHandler) ListTransactions(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	txs, total, err := h.finance.ListTransactions(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.TransactionResponse, 0, len(txs))
	for i := range txs {
		items = append(items, dto.NewTransactionResponse(&txs[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ListEnvelope[dto.TransactionResponse]{Items: items, Total: total}})
}

// GetTransaction GET /finance/transactions/:id.
func (h *FinanceHandler) GetTransaction(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	tx, err := h.finance.GetTransaction(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewTransactionResponse(tx)})
}

// UpdateTransaction PUT /finance/transactions/:id.
func (h *FinanceHandler) UpdateTransaction(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	tx, err := h.finance.UpdateTransaction(c.Context(), c.Params("id"), repository.TransactionUpdate{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		Category:    req.Category,
		Reference:   req.Reference,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewTransactionResponse(tx)})
}

// DeleteTransaction DELETE /finance/transactions/:id.
func (h *FinanceHandler) DeleteTransaction(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.finance.DeleteTransaction(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "transaction deleted"}})
}

// CreateInvoice POST /finance/invoices.
func (h *FinanceHandler) CreateInvoice(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateFinanceInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.InvoiceNumber == "" || req.ClientName == "" {
		return apperrors.NewValidationError("invoice_number and client_name required", nil)
	}
	if req.Status == "" {
		req.Status = "draft"
	}

	taken, err := h.finance.InvoiceNumberExists(c.Context(), req.InvoiceNumber)
	if err != nil {
		return apperrors.MapError(err)
	}
	if taken {
		return apperrors.NewConflict("invoice number already exists", fiber.Map{"invoice_number": req.InvoiceNumber})
	}

	inv := &domain.FinanceInvoice{
		InvoiceNumber: req.InvoiceNumber,
		ClientName:    req.ClientName,
		Amount:        req.Amount,
		Status:        req.Status,
		IssueDate:     req.IssueDate,
		DueDate:       req.DueDate,
		Notes:         req.Notes,
		CreatedBy:     actorRef(principal),
	}
	if err := h.finance.CreateInvoice(c.Context(), inv); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFinanceInvoiceResponse(inv)})
}

// ListInvoices GET /finance/invoices.
func (h *FinanceHandler) ListInvoices(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	invoices, total, err := h.finance.ListInvoices(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.FinanceInvoiceResponse, 0, len(invoices))
	for i := range invoices {
		items = append(items, dto.NewFinanceInvoiceResponse(&invoices[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ListEnvelope[dto.FinanceInvoiceResponse]{Items: items, Total: total}})
}

// GetInvoice GET /finance/invoices/:id.
func (h *FinanceHandler) GetInvoice(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	inv, err := h.finance.GetInvoice(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFinanceInvoiceResponse(inv)})
}

// UpdateInvoice PUT /finance/invoices/:id.
func (h *FinanceHandler) UpdateInvoice(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateFinanceInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	inv, err := h.finance.UpdateInvoice(c.Context(), c.Params("id"), repository.FinanceInvoiceUpdate{
		ClientName: req.ClientName,
		Amount:     req.Amount,
		Status:     req.Status,
		IssueDate:  req.IssueDate,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFinanceInvoiceResponse(inv)})
}

// DeleteInvoice DELETE /finance/invoices/:id.
func (h *FinanceHandler) DeleteInvoice(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.finance.DeleteInvoice(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "invoice deleted"}})
}

// CreateExpense POST /finance/expenses.
func (h *FinanceHandler) CreateExpense(c *fiber.Ctx) error {
	principal, err := requirePrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CreateFinanceExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ExpenseNumber == "" || req.Category == "" {
		return apperrors.NewValidationError("expense_number and category required", nil)
	}

	exp := &domain.FinanceExpense{
		ExpenseNumber: req.ExpenseNumber,
		Category:      req.Category,
		Amount:        req.Amount,
		Vendor:        req.Vendor,
		ExpenseDate:   req.ExpenseDate,
		CreatedBy:     actorRef(principal),
	}
	if err := h.finance.CreateExpense(c.Context(), exp); err != nil {
		return apperrors.MapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewFinanceExpenseResponse(exp)})
}

// ListExpenses GET /finance/expenses.
func (h *FinanceHandler) ListExpenses(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	expenses, total, err := h.finance.ListExpenses(c.Context(), queryInt(c, "limit", 100), queryInt(c, "skip", 0))
	if err != nil {
		return apperrors.MapError(err)
	}
	items := make([]dto.FinanceExpenseResponse, 0, len(expenses))
	for i := range expenses {
		items = append(items, dto.NewFinanceExpenseResponse(&expenses[i]))
	}
	return c.JSON(fiber.Map{"data": dto.ListEnvelope[dto.FinanceExpenseResponse]{Items: items, Total: total}})
}

// GetExpense GET /finance/expenses/:id.
func (h *FinanceHandler) GetExpense(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	exp, err := h.finance.GetExpense(c.Context(), c.Params("id"))
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFinanceExpenseResponse(exp)})
}

// UpdateExpense PUT /finance/expenses/:id.
func (h *FinanceHandler) UpdateExpense(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	var req dto.UpdateFinanceExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	exp, err := h.finance.UpdateExpense(c.Context(), c.Params("id"), repository.FinanceExpenseUpdate{
		Category:    req.Category,
		Amount:      req.Amount,
		Vendor:      req.Vendor,
		ExpenseDate: req.ExpenseDate,
	})
	if err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": dto.NewFinanceExpenseResponse(exp)})
}

// DeleteExpense DELETE /finance/expenses/:id.
func (h *FinanceHandler) DeleteExpense(c *fiber.Ctx) error {
	if _, err := requirePrincipal(c); err != nil {
		return err
	}
	if err := h.finance.DeleteExpense(c.Context(), c.Params("id")); err != nil {
		return apperrors.MapError(err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "expense deleted"}})
}
