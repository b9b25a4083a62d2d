package converter

import (
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
)

func ConvertStatsToResponse(stats entity.DashboardStats) model.DashboardStatsResponse {
	return model.DashboardStatsResponse{
		TotalOrders:              stats.TotalOrders,
		TotalRevenue:             stats.TotalRevenue,
		ActiveCustomers:          stats.ActiveCustomers,
		PendingOrders:            stats.PendingOrders,
		CompletedOrdersThisMonth: stats.CompletedOrdersThisMonth,
		RevenueThisMonth:         stats.RevenueThisMonth,
		AverageOrderValue:        stats.AverageOrderValue,
	}
}
