package repository

import (
	"context"

	"github.com/spec-kit/erp-backend/internal/domain"
)

// DashboardRepository reduces several tables into the landing page counters.
type DashboardRepository interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type dashboardRepository struct {
	db Querier
}

// NewDashboardRepository instantiates the repository.
func NewDashboardRepository(db Querier) DashboardRepository {
	return &dashboardRepository{db: db}
}

// Stats runs a single aggregation pass. Revenue counts paid invoices only,
// while the order counter covers every invoice regardless of status.
func (r *dashboardRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	const query = `
        SELECT
            (SELECT COALESCE(SUM(amount), 0) FROM finance_invoices WHERE status = 'paid'),
            (SELECT COUNT(*) FROM finance_invoices),
            (SELECT COUNT(*) FROM employees),
            (SELECT COUNT(*) FROM inventory_items),
            (SELECT COALESCE(SUM(stock), 0) FROM inventory_items),
            (SELECT COUNT(*) FROM inventory_items WHERE status = 'low stock'),
            (SELECT COUNT(*) FROM inventory_items WHERE status = 'out of stock'),
            (SELECT COALESCE(SUM(value), 0) FROM sales_leads WHERE value IS NOT NULL)`

	var stats domain.DashboardStats
	if err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalRevenue,
		&stats.TotalOrders,
		&stats.ActiveEmployees,
		&stats.TotalInventoryItems,
		&stats.TotalStock,
		&stats.LowStockItems,
		&stats.OutOfStockItems,
		&stats.TotalLeadsValue,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
