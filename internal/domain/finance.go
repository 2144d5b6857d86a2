package domain

import "time"

// Transaction is a finance ledger entry (income, expense, transfer).
type Transaction struct {
	ID          string
	Type        string
	Amount      float64
	Description *string
	Date        time.Time
	Category    string
	Reference   *string
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FinanceInvoice is an issued invoice. InvoiceNumber is unique.
type FinanceInvoice struct {
	ID            string
	InvoiceNumber string
	ClientName    string
	Amount        float64
	Status        string
	IssueDate     time.Time
	DueDate       time.Time
	Notes         *string
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FinanceExpense is a recorded expense against a vendor.
type FinanceExpense struct {
	ID            string
	ExpenseNumber string
	Category      string
	Amount        float64
	Vendor        string
	ExpenseDate   time.Time
	CreatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
