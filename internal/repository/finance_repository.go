package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const transactionColumns = `id, type, amount, description, date, category, reference, created_by,
       created_at, updated_at`

const financeInvoiceColumns = `id, invoice_number, client_name, amount, status, issue_date,
       due_date, notes, created_by, created_at, updated_at`

const financeExpenseColumns = `id, expense_number, category, amount, vendor, expense_date,
       created_by, created_at, updated_at`

// TransactionUpdate lists the mutable transaction fields.
type TransactionUpdate struct {
	Type        *string
	Amount      *float64
	Description *string
	Date        *time.Time
	Category    *string
	Reference   *string
}

// FinanceInvoiceUpdate lists the mutable invoice fields.
type FinanceInvoiceUpdate struct {
	ClientName *string
	Amount     *float64
	Status     *string
	IssueDate  *time.Time
	DueDate    *time.Time
	Notes      *string
}

// FinanceExpenseUpdate lists the mutable expense fields.
type FinanceExpenseUpdate struct {
	Category    *string
	Amount      *float64
	Vendor      *string
	ExpenseDate *time.Time
}

// FinanceRepository persists transactions, invoices and expenses.
type FinanceRepository interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) error
	GetTransaction(ctx context.Context, id string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error)
	UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error

	CreateInvoice(ctx context.Context, inv *domain.FinanceInvoice) error
	GetInvoice(ctx context.Context, id string) (*domain.FinanceInvoice, error)
	ListInvoices(ctx context.Context, limit, offset int) ([]domain.FinanceInvoice, int64, error)
	UpdateInvoice(ctx context.Context, id string, update FinanceInvoiceUpdate) (*domain.FinanceInvoice, error)
	DeleteInvoice(ctx context.Context, id string) error
	InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error)

	CreateExpense(ctx context.Context, exp *domain.FinanceExpense) error
	GetExpense(ctx context.Context, id string) (*domain.FinanceExpense, error)
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.FinanceExpense, int64, error)
	UpdateExpense(ctx context.Context, id string, update FinanceExpenseUpdate) (*domain.FinanceExpense, error)
	DeleteExpense(ctx context.Context, id string) error
}

type financeRepository struct {
	db Querier
}

// NewFinanceRepository instantiates the repository.
func NewFinanceRepository(db Querier) FinanceRepository {
	return &financeRepository{db: db}
}

func (r *financeRepository) CreateTransaction(ctx context.Context, tx *domain.Transaction) error {
	const query = `
        INSERT INTO transactions (type, amount, description, date, category, reference, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		tx.Type, tx.Amount, tx.Description, tx.Date, tx.Category, tx.Reference, tx.CreatedBy,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
}

func (r *financeRepository) GetTransaction(ctx context.Context, id string) (*domain.Transaction, error) {
	return scanTransactionRow(r.db.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id=$1`, id))
}

func (r *financeRepository) ListTransactions(ctx context.Context, limit, offset int) ([]domain.Transaction, int64, error) {
	total, err := r.countRows(ctx, "transactions")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY date DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := []domain.Transaction{}
	for rows.Next() {
		tx, err := scanTransactionRow(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *tx)
	}
	return result, total, rows.Err()
}

func (r *financeRepository) UpdateTransaction(ctx context.Context, id string, update TransactionUpdate) (*domain.Transaction, error) {
	builder := psql.Update("transactions").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Type != nil {
		builder = builder.Set("type", *update.Type)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.Date != nil {
		builder = builder.Set("date", *update.Date)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Reference != nil {
		builder = builder.Set("reference", *update.Reference)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + transactionColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanTransactionRow(r.db.QueryRow(ctx, query, args...))
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "transactions", id)
}

func (r *financeRepository) CreateInvoice(ctx context.Context, inv *domain.FinanceInvoice) error {
	const query = `
        INSERT INTO finance_invoices (invoice_number, client_name, amount, status, issue_date, due_date, notes, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		inv.InvoiceNumber, inv.ClientName, inv.Amount, inv.Status, inv.IssueDate,
		inv.DueDate, inv.Notes, inv.CreatedBy,
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
}

func (r *financeRepository) GetInvoice(ctx context.Context, id string) (*domain.FinanceInvoice, error) {
	return scanFinanceInvoiceRow(r.db.QueryRow(ctx,
		`SELECT `+financeInvoiceColumns+` FROM finance_invoices WHERE id=$1`, id))
}

func (r *financeRepository) ListInvoices(ctx context.Context, limit, offset int) ([]domain.FinanceInvoice, int64, error) {
	total, err := r.countRows(ctx, "finance_invoices")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+financeInvoiceColumns+` FROM finance_invoices ORDER BY issue_date DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := []domain.FinanceInvoice{}
	for rows.Next() {
		inv, err := scanFinanceInvoiceRow(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *inv)
	}
	return result, total, rows.Err()
}

func (r *financeRepository) UpdateInvoice(ctx context.Context, id string, update FinanceInvoiceUpdate) (*domain.FinanceInvoice, error) {
	builder := psql.Update("finance_invoices").Set("updated_at", squirrel.Expr("NOW()"))
	if update.ClientName != nil {
		builder = builder.Set("client_name", *update.ClientName)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.IssueDate != nil {
		builder = builder.Set("issue_date", *update.IssueDate)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + financeInvoiceColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanFinanceInvoiceRow(r.db.QueryRow(ctx, query, args...))
}

func (r *financeRepository) DeleteInvoice(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "finance_invoices", id)
}

func (r *financeRepository) InvoiceNumberExists(ctx context.Context, invoiceNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM finance_invoices WHERE invoice_number=$1)`, invoiceNumber).Scan(&exists)
	return exists, err
}

func (r *financeRepository) CreateExpense(ctx context.Context, exp *domain.FinanceExpense) error {
	const query = `
        INSERT INTO finance_expenses (expense_number, category, amount, vendor, expense_date, created_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		exp.ExpenseNumber, exp.Category, exp.Amount, exp.Vendor, exp.ExpenseDate, exp.CreatedBy,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)
}

func (r *financeRepository) GetExpense(ctx context.Context, id string) (*domain.FinanceExpense, error) {
	return scanFinanceExpenseRow(r.db.QueryRow(ctx,
		`SELECT `+financeExpenseColumns+` FROM finance_expenses WHERE id=$1`, id))
}

func (r *financeRepository) ListExpenses(ctx context.Context, limit, offset int) ([]domain.FinanceExpense, int64, error) {
	total, err := r.countRows(ctx, "finance_expenses")
	if err != nil {
		return nil, 0, err
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+financeExpenseColumns+` FROM finance_expenses ORDER BY expense_date DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	result := []domain.FinanceExpense{}
	for rows.Next() {
		exp, err := scanFinanceExpenseRow(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *exp)
	}
	return result, total, rows.Err()
}

func (r *financeRepository) UpdateExpense(ctx context.Context, id string, update FinanceExpenseUpdate) (*domain.FinanceExpense, error) {
	builder := psql.Update("finance_expenses").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Amount != nil {
		builder = builder.Set("amount", *update.Amount)
	}
	if update.Vendor != nil {
		builder = builder.Set("vendor", *update.Vendor)
	}
	if update.ExpenseDate != nil {
		builder = builder.Set("expense_date", *update.ExpenseDate)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + financeExpenseColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanFinanceExpenseRow(r.db.QueryRow(ctx, query, args...))
}

func (r *financeRepository) DeleteExpense(ctx context.Context, id string) error {
	return r.deleteRow(ctx, "finance_expenses", id)
}

func (r *financeRepository) countRows(ctx context.Context, table string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&total)
	return total, err
}

func (r *financeRepository) deleteRow(ctx context.Context, table, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTransactionRow(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	if err := row.Scan(
		&t.ID, &t.Type, &t.Amount, &t.Description, &t.Date, &t.Category, &t.Reference,
		&t.CreatedBy, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanFinanceInvoiceRow(row pgx.Row) (*domain.FinanceInvoice, error) {
	var i domain.FinanceInvoice
	if err := row.Scan(
		&i.ID, &i.InvoiceNumber, &i.ClientName, &i.Amount, &i.Status, &i.IssueDate,
		&i.DueDate, &i.Notes, &i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}

func scanFinanceExpenseRow(row pgx.Row) (*domain.FinanceExpense, error) {
	var e domain.FinanceExpense
	if err := row.Scan(
		&e.ID, &e.ExpenseNumber, &e.Category, &e.Amount, &e.Vendor, &e.ExpenseDate,
		&e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
