package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const inventoryColumns = `id, name, category, stock, unit_price, supplier, status, created_by,
       created_at, updated_at`

// InventoryItemUpdate lists the mutable item fields. Nil fields are untouched.
type InventoryItemUpdate struct {
	Name      *string
	Category  *string
	Stock     *int
	UnitPrice *float64
	Supplier  *string
	Status    *string
}

// InventoryRepository persists stock records.
type InventoryRepository interface {
	Create(ctx context.Context, item *domain.InventoryItem) error
	GetByID(ctx context.Context, id string) (*domain.InventoryItem, error)
	List(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error)
	Update(ctx context.Context, id string, update InventoryItemUpdate) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id string) error
}

type inventoryRepository struct {
	db Querier
}

// NewInventoryRepository instantiates the repository.
func NewInventoryRepository(db Querier) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *domain.InventoryItem) error {
	const query = `
        INSERT INTO inventory_items (name, category, stock, unit_price, supplier, status, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		item.Name,
		item.Category,
		item.Stock,
		item.UnitPrice,
		item.Supplier,
		item.Status,
		item.CreatedBy,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id string) (*domain.InventoryItem, error) {
	return scanInventoryRow(r.db.QueryRow(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items WHERE id=$1`, id))
}

func (r *inventoryRepository) List(ctx context.Context, limit, offset int) ([]domain.InventoryItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+inventoryColumns+` FROM inventory_items ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.InventoryItem{}
	for rows.Next() {
		item, err := scanInventoryRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	return result, rows.Err()
}

func (r *inventoryRepository) Update(ctx context.Context, id string, update InventoryItemUpdate) (*domain.InventoryItem, error) {
	builder := psql.Update("inventory_items").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Name != nil {
		builder = builder.Set("name", *update.Name)
	}
	if update.Category != nil {
		builder = builder.Set("category", *update.Category)
	}
	if update.Stock != nil {
		builder = builder.Set("stock", *update.Stock)
	}
	if update.UnitPrice != nil {
		builder = builder.Set("unit_price", *update.UnitPrice)
	}
	if update.Supplier != nil {
		builder = builder.Set("supplier", *update.Supplier)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + inventoryColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanInventoryRow(r.db.QueryRow(ctx, query, args...))
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanInventoryRow(row pgx.Row) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	if err := row.Scan(
		&i.ID, &i.Name, &i.Category, &i.Stock, &i.UnitPrice, &i.Supplier, &i.Status,
		&i.CreatedBy, &i.CreatedAt, &i.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &i, nil
}
