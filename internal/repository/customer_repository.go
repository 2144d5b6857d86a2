package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const customerColumns = `id, name, email, phone, company, created_by, created_at, updated_at`

// CustomerUpdate lists the mutable customer fields. Nil fields are untouched.
type CustomerUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
}

// CustomerRepository persists CRM customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, limit, offset int) ([]domain.Customer, error)
	Update(ctx context.Context, id string, update CustomerUpdate) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

type customerRepository struct {
	db Querier
}

// NewCustomerRepository instantiates the repository.
func NewCustomerRepository(db Querier) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (name, email, phone, company, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Company,
		customer.CreatedBy,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return scanCustomerRow(r.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id=$1`, id))
}

func (r *customerRepository) List(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomerRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *customer)
	}
	return result, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, id string, update CustomerUpdate) (*domain.Customer, error) {
	builder := psql.Update("customers").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Company != nil {
		builder = builder.Set("company", *update.Company)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + customerColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCustomerRow(r.db.QueryRow(ctx, query, args...))
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanCustomerRow(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 100
	}
	return limit
}

func normalizeOffset(offset int) int {
	if offset < 0 {
		return 0
	}
	return offset
}
