package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const supplierColumns = `id, name, contact_person, email, phone, address, created_by, created_at, updated_at`

// SupplierUpdate lists the mutable supplier fields.
type SupplierUpdate struct {
	Name          *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *string
}

// SupplierRepository persists suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, id string) (*domain.Supplier, error)
	List(ctx context.Context, limit, offset int) ([]domain.Supplier, error)
	Update(ctx context.Context, id string, update SupplierUpdate) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
}

type supplierRepository struct {
	db Querier
}

// NewSupplierRepository instantiates the repository.
func NewSupplierRepository(db Querier) SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, s *domain.Supplier) error {
	const query = `
        INSERT INTO suppliers (name, contact_person, email, phone, address, created_by)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.CreatedBy,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *supplierRepository) GetByID(ctx context.Context, id string) (*domain.Supplier, error) {
	return scanSupplierRow(r.db.QueryRow(ctx,
		`SELECT `+supplierColumns+` FROM suppliers WHERE id=$1`, id))
}

func (r *supplierRepository) List(ctx context.Context, limit, offset int) ([]domain.Supplier, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		s, err := scanSupplierRow(rows)
		if err != nil {
			return nil, err
		}
		suppliers = append(suppliers, *s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepository) Update(ctx context.Context, id string, update SupplierUpdate) (*domain.Supplier, error) {
	builder := psql.Update("suppliers").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.ContactPerson != nil {
		builder = builder.Set("contact_person", *update.ContactPerson)
	}
	if update.Email != nil {
		builder = builder.Set("email", *update.Email)
	}
	if update.Phone != nil {
		builder = builder.Set("phone", *update.Phone)
	}
	if update.Address != nil {
		builder = builder.Set("address", *update.Address)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + supplierColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanSupplierRow(r.db.QueryRow(ctx, query, args...))
}

func (r *supplierRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanSupplierRow(row pgx.Row) (*domain.Supplier, error) {
	var s domain.Supplier
	if err := row.Scan(
		&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.CreatedBy, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
