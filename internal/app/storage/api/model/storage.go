package model

import (
	"context"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

type Storage interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	CreateUser(ctx context.Context, user entity.User) error
	GetUserByEmail(ctx context.Context, email string) (entity.User, error)
	GetUserByID(ctx context.Context, userID entity.UserID) (entity.User, error)

	GetServices(ctx context.Context, activeOnly bool) (entity.Services, error)
	GetService(ctx context.Context, serviceID entity.ServiceID) (entity.Service, error)
	CreateService(ctx context.Context, service entity.Service) error
	UpdateService(ctx context.Context, service entity.Service) error
	DeleteService(ctx context.Context, serviceID entity.ServiceID) error
	CountServices(ctx context.Context) (int64, error)

	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	GetOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error)

	GetDashboardStats(ctx context.Context) (entity.DashboardStats, error)
}
