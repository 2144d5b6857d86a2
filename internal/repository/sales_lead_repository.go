package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const salesLeadColumns = `id, name, email, phone, company, status, value, notes, created_by,
       created_at, updated_at`

// SalesLeadUpdate lists the mutable lead fields. Nil fields are untouched.
type SalesLeadUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Status  *string
	Value   *float64
	Notes   *string
}

// SalesLeadRepository persists sales pipeline records.
type SalesLeadRepository interface {
	Create(ctx context.Context, lead *domain.SalesLead) error
	GetByID(ctx context.Context, id string) (*domain.SalesLead, error)
	List(ctx context.Context, limit, offset int) ([]domain.SalesLead, error)
	Update(ctx context.Context, id string, update SalesLeadUpdate) (*domain.SalesLead, error)
	Delete(ctx context.Context, id string) error
}

type salesLeadRepository struct {
	db Querier
}

// NewSalesLeadRepository instantiates the repository.
func NewSalesLeadRepository(db Querier) SalesLeadRepository {
	return &salesLeadRepository{db: db}
}

func (r *salesLeadRepository) Create(ctx context.Context, lead *domain.SalesLead) error {
	const query = `
        INSERT INTO sales_leads (name, email, phone, company, status, value, notes, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Company,
		lead.Status,
		lead.Value,
		lead.Notes,
		lead.CreatedBy,
	).Scan(&lead.ID, &lead.CreatedAt, &lead.UpdatedAt)
}

func (r *salesLeadRepository) GetByID(ctx context.Context, id string) (*domain.SalesLead, error) {
	return scanSalesLeadRow(r.db.QueryRow(ctx,
		`SELECT `+salesLeadColumns+` FROM sales_leads WHERE id=$1`, id))
}

func (r *salesLeadRepository) List(ctx context.Context, limit, offset int) ([]domain.SalesLead, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+salesLeadColumns+` FROM sales_leads ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.SalesLead{}
	for rows.Next() {
		lead, err := scanSalesLeadRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *lead)
	}
	return result, rows.Err()
}

func (r *salesLeadRepository) Update(ctx context.Context, id string, update SalesLeadUpdate) (*domain.SalesLead, error) {
	builder := psql.Update("sales_leads").Set("updated_at", squirrel.Expr("NOW()"))
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
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.Value != nil {
		builder = builder.Set("value", *update.Value)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + salesLeadColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSalesLeadRow(r.db.QueryRow(ctx, query, args...))
}

func (r *salesLeadRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM sales_leads WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSalesLeadRow(row pgx.Row) (*domain.SalesLead, error) {
	var l domain.SalesLead
	if err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.Company, &l.Status, &l.Value, &l.Notes,
		&l.CreatedBy, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &l, nil
}
