package model

type DashboardStatsResponse struct {
	TotalOrders              int64   `json:"totalOrders"`
	TotalRevenue             float64 `json:"totalRevenue"`
	ActiveCustomers          int64   `json:"activeCustomers"`
	PendingOrders            int64   `json:"pendingOrders"`
	CompletedOrdersThisMonth int64   `json:"completedOrdersThisMonth"`
	RevenueThisMonth         float64 `json:"revenueThisMonth"`
	AverageOrderValue        float64 `json:"averageOrderValue"`
}
