package domain

// DashboardStats reduces finance, HR, inventory and sales tables into
// summary counters for the landing dashboard.
type DashboardStats struct {
	TotalRevenue        float64
	TotalOrders         int64
	ActiveEmployees     int64
	TotalInventoryItems int64
	TotalStock          int64
	LowStockItems       int64
	OutOfStockItems     int64
	TotalLeadsValue     float64
}
