package entity

type DashboardStats struct {
	TotalOrders              int64
	TotalRevenue             float64
	ActiveCustomers          int64
	PendingOrders            int64
	CompletedOrdersThisMonth int64
	RevenueThisMonth         float64
	AverageOrderValue        float64
}
