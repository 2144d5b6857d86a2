package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const purchaseOrderColumns = `id, po_number, supplier_id, status, total_amount, order_date,
       expected_delivery, notes, created_by, created_at, updated_at`

// PurchaseOrderUpdate lists the mutable purchase order fields.
type PurchaseOrderUpdate struct {
	SupplierID       *string
	Status           *string
	TotalAmount      *float64
	OrderDate        *time.Time
	ExpectedDelivery *time.Time
	Notes            *string
}

// PurchaseOrderRepository persists purchase orders.
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *domain.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*domain.PurchaseOrder, error)
	List(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error)
	Update(ctx context.Context, id string, update PurchaseOrderUpdate) (*domain.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
	ExistsByPONumber(ctx context.Context, poNumber string) (bool, error)
}

type purchaseOrderRepository struct {
	db Querier
}

// NewPurchaseOrderRepository instantiates the repository.
func NewPurchaseOrderRepository(db Querier) PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *domain.PurchaseOrder) error {
	const query = `
        INSERT INTO purchase_orders (po_number, supplier_id, status, total_amount, order_date, expected_delivery, notes, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		po.PONumber, po.SupplierID, po.Status, po.TotalAmount, po.OrderDate,
		po.ExpectedDelivery, po.Notes, po.CreatedBy,
	).Scan(&po.ID, &po.CreatedAt, &po.UpdatedAt)
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id string) (*domain.PurchaseOrder, error) {
	return scanPurchaseOrderRow(r.db.QueryRow(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE id=$1`, id))
}

func (r *purchaseOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.PurchaseOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+purchaseOrderColumns+` FROM purchase_orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.PurchaseOrder{}
	for rows.Next() {
		po, err := scanPurchaseOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *po)
	}
	return orders, rows.Err()
}

func (r *purchaseOrderRepository) Update(ctx context.Context, id string, update PurchaseOrderUpdate) (*domain.PurchaseOrder, error) {
	builder := psql.Update("purchase_orders").Set("updated_at", squirrel.Expr("NOW()"))
	if update.SupplierID != nil {
		builder = builder.Set("supplier_id", *update.SupplierID)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.TotalAmount != nil {
		builder = builder.Set("total_amount", *update.TotalAmount)
	}
	if update.OrderDate != nil {
		builder = builder.Set("order_date", *update.OrderDate)
	}
	if update.ExpectedDelivery != nil {
		builder = builder.Set("expected_delivery", *update.ExpectedDelivery)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + purchaseOrderColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanPurchaseOrderRow(r.db.QueryRow(ctx, query, args...))
}

func (r *purchaseOrderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM purchase_orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *purchaseOrderRepository) ExistsByPONumber(ctx context.Context, poNumber string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM purchase_orders WHERE po_number=$1)`, poNumber).Scan(&exists)
	return exists, err
}

func scanPurchaseOrderRow(row pgx.Row) (*domain.PurchaseOrder, error) {
	var po domain.PurchaseOrder
	if err := row.Scan(
		&po.ID, &po.PONumber, &po.SupplierID, &po.Status, &po.TotalAmount, &po.OrderDate,
		&po.ExpectedDelivery, &po.Notes, &po.CreatedBy, &po.CreatedAt, &po.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &po, nil
}
