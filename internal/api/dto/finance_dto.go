package dto

import (
	"time"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// ListEnvelope wraps paginated finance collections.
type ListEnvelope[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// CreateTransactionRequest payload.
type CreateTransactionRequest struct {
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Reference   *string   `json:"reference"`
}

// UpdateTransactionRequest payload. Absent fields stay untouched.
type UpdateTransactionRequest struct {
	Type        *string    `json:"type"`
	Amount      *float64   `json:"amount"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Category    *string    `json:"category"`
	Reference   *string    `json:"reference"`
}

// TransactionResponse ledger entry.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Amount      float64   `json:"amount"`
	Description *string   `json:"description"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Reference   *string   `json:"reference"`
	CreatedBy   *string   `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewTransactionResponse maps a transaction.
func NewTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Type:        t.Type,
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		Category:    t.Category,
		Reference:   t.Reference,
		CreatedBy:   t.CreatedBy,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// CreateFinanceInvoiceRequest payload.
type CreateFinanceInvoiceRequest struct {
	InvoiceNumber string    `json:"invoice_number"`
	ClientName    string    `json:"client_name"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	Notes         *string   `json:"notes"`
}

// UpdateFinanceInvoiceRequest payload. Absent fields stay untouched.
type UpdateFinanceInvoiceRequest struct {
	ClientName *string    `json:"client_name"`
	Amount     *float64   `json:"amount"`
	Status     *string    `json:"status"`
	IssueDate  *time.Time `json:"issue_date"`
	DueDate    *time.Time `json:"due_date"`
	Notes      *string    `json:"notes"`
}

// FinanceInvoiceResponse issued invoice.
type FinanceInvoiceResponse struct {
	ID            string    `json:"id"`
	InvoiceNumber string    `json:"invoice_number"`
	ClientName    string    `json:"client_name"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	IssueDate     time.Time `json:"issue_date"`
	DueDate       time.Time `json:"due_date"`
	Notes         *string   `json:"notes"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewFinanceInvoiceResponse maps an invoice.
func NewFinanceInvoiceResponse(i *domain.FinanceInvoice) FinanceInvoiceResponse {
	return FinanceInvoiceResponse{
		ID:            i.ID,
		InvoiceNumber: i.InvoiceNumber,
		ClientName:    i.ClientName,
		Amount:        i.Amount,
		Status:        i.Status,
		IssueDate:     i.IssueDate,
		DueDate:       i.DueDate,
		Notes:         i.Notes,
		CreatedBy:     i.CreatedBy,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

// CreateFinanceExpenseRequest payload.
type CreateFinanceExpenseRequest struct {
	ExpenseNumber string    `json:"expense_number"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Vendor        string    `json:"vendor"`
	ExpenseDate   time.Time `json:"expense_date"`
}

// UpdateFinanceExpenseRequest payload. Absent fields stay untouched.
type UpdateFinanceExpenseRequest struct {
	Category    *string    `json:"category"`
	Amount      *float64   `json:"amount"`
	Vendor      *string    `json:"vendor"`
	ExpenseDate *time.Time `json:"expense_date"`
}

// FinanceExpenseResponse recorded expense.
type FinanceExpenseResponse struct {
	ID            string    `json:"id"`
	ExpenseNumber string    `json:"expense_number"`
	Category      string    `json:"category"`
	Amount        float64   `json:"amount"`
	Vendor        string    `json:"vendor"`
	ExpenseDate   time.Time `json:"expense_date"`
	CreatedBy     *string   `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewFinanceExpenseResponse maps an expense.
func NewFinanceExpenseResponse(e *domain.FinanceExpense) FinanceExpenseResponse {
	return FinanceExpenseResponse{
		ID:            e.ID,
		ExpenseNumber: e.ExpenseNumber,
		Category:      e.Category,
		Amount:        e.Amount,
		Vendor:        e.Vendor,
		ExpenseDate:   e.ExpenseDate,
		CreatedBy:     e.CreatedBy,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
