package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	httputils "github.com/laundrypro/go-laundry-service/internal/app/controller/http/utils"
	"github.com/laundrypro/go-laundry-service/internal/app/converter"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/notification"
	usecase_order "github.com/laundrypro/go-laundry-service/internal/app/usecase/order"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/status"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/validator"
	"go.uber.org/zap"
)

const (
	ErrOrderNotFound       = "order not found"
	ErrInvalidStatus       = "unknown order status"
	ErrInvalidOrderRequest = "wrong order request format"
)

const filterDateLayout = "2006-01-02"

type OrderProcessor interface {
	CreateOrder(ctx context.Context, order entity.Order) error
	GetOrder(ctx context.Context, orderID entity.OrderID) (entity.Order, error)
	GetUserOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	GetOrders(ctx context.Context, filter entity.OrderFilter) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, update entity.OrderStatusUpdate) (entity.Order, error)
}

type Order struct {
	storage       OrderProcessor
	carts         *cart.Store
	notifications *notification.Center
}

func New(storage OrderProcessor, carts *cart.Store, notifications *notification.Center) Order {
	return Order{
		storage:       storage,
		carts:         carts,
		notifications: notifications,
	}
}

// SubmitOrder turns the session cart into a persisted order and resets the
// cart once the order is stored.
func (p *Order) SubmitOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while submitting order", zap.Error(err))
			return
		}

		state := p.carts.Get(userIDCtx.UserID)
		if err := validator.ValidateOrderSubmission(state); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		order := usecase_order.CreateFromCart(userIDCtx.UserID, state)

		ctx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
		defer cancel()

		if err := p.storage.CreateOrder(ctx, order); err != nil {
			zap.L().Error("error while creating order", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		p.carts.Reset(userIDCtx.UserID)
		p.notifications.Push(
			userIDCtx.UserID,
			entity.NotificationSuccess,
			"Order Placed",
			fmt.Sprintf("Your order %s has been received", order.Number),
		)

		httputils.WriteSuccess(w, http.StatusCreated, converter.ConvertOrderToResponse(order))
	}
}

func (p *Order) GetUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting user orders", zap.Error(err))
			return
		}

		orders, err := p.getUserOrders(userIDCtx.UserID, w)
		if err != nil {
			zap.L().Error("error while getting user orders", zap.Error(err))
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertOrdersToResponses(orders))
	}
}

// GetOrder returns one order with its tracking progress. Customers may only
// read their own orders; administrators may read any.
func (p *Order) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting order", zap.Error(err))
			return
		}

		orderID := entity.OrderID(chi.URLParam(r, "orderID"))

		order, err := p.getOrder(orderID, w)
		if err != nil {
			zap.L().Error("error while getting order", zap.Error(err), zap.String("order_id", orderID.String()))
			return
		}

		if order.UserID != userIDCtx.UserID && !userIDCtx.IsAdmin() {
			httputils.WriteError(w, http.StatusNotFound, ErrOrderNotFound)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertOrderToTrackingResponse(order))
	}
}

func (p *Order) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseOrderFilter(r)
		if err != nil {
			httputils.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.storage.GetOrders(ctx, filter)
		if err != nil {
			zap.L().Error("error while listing orders", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertOrdersToResponses(orders))
	}
}

// UpdateStatus sets any known status on an order. There is no forward-only
// guard: administrators may move an order backward or out of a terminal
// state, matching how the status workflow is defined.
func (p *Order) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := entity.OrderID(chi.URLParam(r, "orderID"))

		var request model.UpdateOrderStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidOrderRequest)
			return
		}
		defer r.Body.Close()

		next := entity.OrderStatus(request.Status)

		order, err := p.getOrder(orderID, w)
		if err != nil {
			zap.L().Error("error while getting order while updating status", zap.Error(err))
			return
		}

		if !status.CanTransitionTo(order.Status, next) {
			httputils.WriteError(w, http.StatusUnprocessableEntity, ErrInvalidStatus)
			return
		}

		updated, err := p.updateOrderStatus(orderID, entity.OrderStatusUpdate{
			Status:             next,
			AdminNotes:         request.Notes,
			CancellationReason: request.CancellationReason,
		}, w)
		if err != nil {
			zap.L().Error("error while updating order status", zap.Error(err))
			return
		}

		p.notifications.Push(
			updated.UserID,
			entity.NotificationInfo,
			"Order Updated",
			fmt.Sprintf("Order %s is now %s", updated.Number, updated.Status),
		)

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertOrderToResponse(updated))
	}
}

func (p *Order) getUserOrders(userID entity.UserID, w http.ResponseWriter) (entity.Orders, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	orders, err := p.storage.GetUserOrders(ctx, userID)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrdersForUserNotFound) {
			w.WriteHeader(http.StatusNoContent)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		return entity.Orders{}, fmt.Errorf("error while getting user orders: %w", err)
	}

	return orders, nil
}

func (p *Order) getOrder(orderID entity.OrderID, w http.ResponseWriter) (entity.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	order, err := p.storage.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			httputils.WriteError(w, http.StatusNotFound, ErrOrderNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		return entity.Order{}, err
	}

	return order, nil
}

func (p *Order) updateOrderStatus(orderID entity.OrderID, update entity.OrderStatusUpdate, w http.ResponseWriter) (entity.Order, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
	defer cancel()

	updated, err := p.storage.UpdateOrderStatus(ctx, orderID, update)
	if err != nil {
		if errors.Is(err, err_storage.ErrOrderNotFound) {
			httputils.WriteError(w, http.StatusNotFound, ErrOrderNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		return entity.Order{}, err
	}

	return updated, nil
}

func parseOrderFilter(r *http.Request) (entity.OrderFilter, error) {
	query := r.URL.Query()

	filter := entity.OrderFilter{
		Status: entity.OrderStatus(query.Get("status")),
		UserID: entity.UserID(query.Get("userId")),
	}

	if len(filter.Status) != 0 && !status.Known(filter.Status) {
		return entity.OrderFilter{}, fmt.Errorf("unknown status filter: %s", filter.Status)
	}

	if from := query.Get("dateFrom"); len(from) != 0 {
		parsed, err := time.Parse(filterDateLayout, from)
		if err != nil {
			return entity.OrderFilter{}, fmt.Errorf("dateFrom is invalid, expected YYYY-MM-DD")
		}
		filter.DateFrom = parsed
	}

	if to := query.Get("dateTo"); len(to) != 0 {
		parsed, err := time.Parse(filterDateLayout, to)
		if err != nil {
			return entity.OrderFilter{}, fmt.Errorf("dateTo is invalid, expected YYYY-MM-DD")
		}
		filter.DateTo = parsed
	}

	return filter, nil
}
