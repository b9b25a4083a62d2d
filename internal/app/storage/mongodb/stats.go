package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
)

const activeCustomerWindow = 30 * 24 * time.Hour

// GetDashboardStats collects the admin dashboard figures. Revenue counts
// delivered orders only; active customers are those registered within the
// last thirty days.
func (s *Mongo) GetDashboardStats(ctx context.Context) (entity.DashboardStats, error) {
	now := time.Now()
	windowStart := now.Add(-activeCustomerWindow)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	totalOrders, err := s.orders.CountDocuments(ctx, bson.M{})
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("error while counting orders: %w", err)
	}

	totalRevenue, err := s.sumDeliveredRevenue(ctx, bson.M{"status": string(entity.StatusDelivered)})
	if err != nil {
		return entity.DashboardStats{}, err
	}

	activeCustomers, err := s.users.CountDocuments(ctx, bson.M{
		"role":       string(entity.RoleCustomer),
		"created_at": bson.M{"$gte": windowStart},
	})
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("error while counting active customers: %w", err)
	}

	pendingOrders, err := s.orders.CountDocuments(ctx, bson.M{"status": string(entity.StatusPending)})
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("error while counting pending orders: %w", err)
	}

	completedThisMonth, err := s.orders.CountDocuments(ctx, bson.M{
		"status":     string(entity.StatusDelivered),
		"created_at": bson.M{"$gte": firstOfMonth},
	})
	if err != nil {
		return entity.DashboardStats{}, fmt.Errorf("error while counting completed orders: %w", err)
	}

	revenueThisMonth, err := s.sumDeliveredRevenue(ctx, bson.M{
		"status":     string(entity.StatusDelivered),
		"created_at": bson.M{"$gte": firstOfMonth},
	})
	if err != nil {
		return entity.DashboardStats{}, err
	}

	var averageOrderValue float64
	if totalOrders > 0 {
		averageOrderValue = cart.Round2(totalRevenue / float64(totalOrders))
	}

	return entity.DashboardStats{
		TotalOrders:              totalOrders,
		TotalRevenue:             totalRevenue,
		ActiveCustomers:          activeCustomers,
		PendingOrders:            pendingOrders,
		CompletedOrdersThisMonth: completedThisMonth,
		RevenueThisMonth:         revenueThisMonth,
		AverageOrderValue:        averageOrderValue,
	}, nil
}

func (s *Mongo) sumDeliveredRevenue(ctx context.Context, match bson.M) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$total_amount"},
		}}},
	}

	cursor, err := s.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error while aggregating revenue: %w", err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("error while decoding revenue aggregation: %w", err)
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}
