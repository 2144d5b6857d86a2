package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/erp-backend/internal/domain"
)

const workOrderColumns = `id, work_order_id, product, quantity, status, start_date, due_date,
       created_by, created_at, updated_at`

// WorkOrderUpdate lists the mutable work order fields. Nil fields are untouched.
type WorkOrderUpdate struct {
	Product   *string
	Quantity  *int
	Status    *string
	StartDate *time.Time
	DueDate   *time.Time
}

// WorkOrderRepository persists manufacturing orders.
type WorkOrderRepository interface {
	Create(ctx context.Context, wo *domain.WorkOrder) error
	GetByID(ctx context.Context, id string) (*domain.WorkOrder, error)
	List(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error)
	Update(ctx context.Context, id string, update WorkOrderUpdate) (*domain.WorkOrder, error)
	Delete(ctx context.Context, id string) error
	ExistsByWorkOrderID(ctx context.Context, workOrderID string) (bool, error)
}

type workOrderRepository struct {
	db Querier
}

// NewWorkOrderRepository instantiates the repository.
func NewWorkOrderRepository(db Querier) WorkOrderRepository {
	return &workOrderRepository{db: db}
}

func (r *workOrderRepository) Create(ctx context.Context, wo *domain.WorkOrder) error {
	const query = `
        INSERT INTO work_orders (work_order_id, product, quantity, status, start_date, due_date, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		wo.WorkOrderID,
		wo.Product,
		wo.Quantity,
		wo.Status,
		wo.StartDate,
		wo.DueDate,
		wo.CreatedBy,
	).Scan(&wo.ID, &wo.CreatedAt, &wo.UpdatedAt)
}

func (r *workOrderRepository) GetByID(ctx context.Context, id string) (*domain.WorkOrder, error) {
	return scanWorkOrderRow(r.db.QueryRow(ctx,
		`SELECT `+workOrderColumns+` FROM work_orders WHERE id=$1`, id))
}

func (r *workOrderRepository) List(ctx context.Context, limit, offset int) ([]domain.WorkOrder, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+workOrderColumns+` FROM work_orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		normalizeLimit(limit), normalizeOffset(offset))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.WorkOrder{}
	for rows.Next() {
		wo, err := scanWorkOrderRow(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *wo)
	}
	return result, rows.Err()
}

func (r *workOrderRepository) Update(ctx context.Context, id string, update WorkOrderUpdate) (*domain.WorkOrder, error) {
	builder := psql.Update("work_orders").Set("updated_at", squirrel.Expr("NOW()"))
	if update.Product != nil {
		builder = builder.Set("product", *update.Product)
	}
	if update.Quantity != nil {
		builder = builder.Set("quantity", *update.Quantity)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}
	if update.StartDate != nil {
		builder = builder.Set("start_date", *update.StartDate)
	}
	if update.DueDate != nil {
		builder = builder.Set("due_date", *update.DueDate)
	}
	query, args, err := builder.
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + workOrderColumns).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanWorkOrderRow(r.db.QueryRow(ctx, query, args...))
}

func (r *workOrderRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM work_orders WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *workOrderRepository) ExistsByWorkOrderID(ctx context.Context, workOrderID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM work_orders WHERE work_order_id=$1)`, workOrderID).Scan(&exists)
	return exists, err
}

func scanWorkOrderRow(row pgx.Row) (*domain.WorkOrder, error) {
	var w domain.WorkOrder
	if err := row.Scan(
		&w.ID, &w.WorkOrderID, &w.Product, &w.Quantity, &w.Status, &w.StartDate, &w.DueDate,
		&w.CreatedBy, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}
