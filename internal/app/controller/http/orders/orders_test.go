package orders

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/laundrypro/go-laundry-service/internal/app/controller/http/orders/mock"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testUserID  = entity.UserID("00308dff-b6b1-4f1b-8515-d09d3db49951")
	otherUserID = entity.UserID("7d9026e6-9e2b-4d1c-a3ba-8d6a6a5a0001")
	testOrderID = entity.OrderID("9f1b54a2-4c2f-4d6e-bb6a-2f0a3c9d0002")
)

var testAddress = entity.Address{
	Street:  "12 Main St",
	City:    "Springfield",
	State:   "IL",
	ZipCode: "62704",
	Country: "USA",
}

var washFold = entity.Service{
	ID:       "svc-wash-fold",
	Name:     "Wash & Fold",
	Price:    15.99,
	Unit:     "load",
	IsActive: true,
}

func authorizedRequest(r *http.Request, userID entity.UserID, role entity.UserRole) *http.Request {
	userCtx := entity.CreateUserIDCtx(userID, role, http.StatusOK)
	ctx := context.WithValue(r.Context(), entity.UserIDCtxKey{}, userCtx)

	return r.WithContext(ctx)
}

func withOrderID(r *http.Request, orderID entity.OrderID) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", orderID.String())

	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func fillSubmittableCart(store *cart.Store, userID entity.UserID) {
	store.Dispatch(userID, cart.AddItem(washFold, 2))
	store.Dispatch(userID, cart.SetPickupAddress(testAddress))
	store.Dispatch(userID, cart.SetDeliveryAddress(testAddress))
	store.Dispatch(userID, cart.SetPickupDate("2026-09-01"))
	store.Dispatch(userID, cart.SetDeliveryDate("2026-09-03"))
}

func TestSubmitOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	type want struct {
		statusCode    int
		cartReset     bool
		notifications int
	}
	tests := []struct {
		name           string
		fillCart       bool
		createOrderErr error
		isCreateOrder  bool

		want want
	}{
		{
			name:           "submittable cart",
			fillCart:       true,
			createOrderErr: nil,
			isCreateOrder:  true,

			want: want{
				statusCode:    http.StatusCreated,
				cartReset:     true,
				notifications: 1,
			},
		},
		{
			name:           "empty cart",
			fillCart:       false,
			createOrderErr: nil,
			isCreateOrder:  false,

			want: want{
				statusCode:    http.StatusBadRequest,
				cartReset:     true,
				notifications: 0,
			},
		},
		{
			name:           "storage error",
			fillCart:       true,
			createOrderErr: errors.New(""),
			isCreateOrder:  true,

			want: want{
				statusCode:    http.StatusInternalServerError,
				cartReset:     false,
				notifications: 0,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			carts := cart.NewStore()
			notifications := notification.NewCenter(0)

			if test.fillCart {
				fillSubmittableCart(carts, testUserID)
			}

			if test.isCreateOrder {
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(test.createOrderErr)
			} else {
				s.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Times(0)
			}

			request := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
			request = authorizedRequest(request, testUserID, entity.RoleCustomer)
			writer := httptest.NewRecorder()

			processor := New(s, carts, notifications)
			handler := processor.SubmitOrder()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Equal(t, test.want.cartReset, len(carts.Get(testUserID).Items) == 0)
			assert.Len(t, notifications.List(testUserID), test.want.notifications)

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}

func TestGetUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	storedOrders := entity.Orders{
		{
			ID:     testOrderID,
			Number: "LP-1756300000000-042",
			UserID: testUserID,
			Status: entity.StatusPending,
		},
	}

	type want struct {
		statusCode int
	}
	tests := []struct {
		name         string
		orders       entity.Orders
		getOrdersErr error
		isGetOrders  bool
		authorized   bool

		want want
	}{
		{
			name:         "user has orders",
			orders:       storedOrders,
			getOrdersErr: nil,
			isGetOrders:  true,
			authorized:   true,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:         "user has no orders",
			orders:       entity.Orders{},
			getOrdersErr: err_storage.ErrOrdersForUserNotFound,
			isGetOrders:  true,
			authorized:   true,

			want: want{
				statusCode: http.StatusNoContent,
			},
		},
		{
			name:         "storage error",
			orders:       entity.Orders{},
			getOrdersErr: errors.New(""),
			isGetOrders:  true,
			authorized:   true,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:         "missing token",
			orders:       entity.Orders{},
			getOrdersErr: nil,
			isGetOrders:  false,
			authorized:   false,

			want: want{
				statusCode: http.StatusUnauthorized,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.isGetOrders {
				s.EXPECT().GetUserOrders(gomock.Any(), testUserID).Return(test.orders, test.getOrdersErr)
			} else {
				s.EXPECT().GetUserOrders(gomock.Any(), gomock.Any()).Times(0)
			}

			request := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
			if test.authorized {
				request = authorizedRequest(request, testUserID, entity.RoleCustomer)
			} else {
				userCtx := entity.CreateUserIDCtx("", "", http.StatusUnauthorized)
				request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, userCtx))
			}
			writer := httptest.NewRecorder()

			processor := New(s, cart.NewStore(), notification.NewCenter(0))
			handler := processor.GetUserOrders()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}

func TestGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	storedOrder := entity.Order{
		ID:     testOrderID,
		Number: "LP-1756300000000-042",
		UserID: testUserID,
		Status: entity.StatusWashing,
	}

	type want struct {
		statusCode int
	}
	tests := []struct {
		name        string
		requester   entity.UserID
		role        entity.UserRole
		order       entity.Order
		getOrderErr error

		want want
	}{
		{
			name:        "owner reads own order",
			requester:   testUserID,
			role:        entity.RoleCustomer,
			order:       storedOrder,
			getOrderErr: nil,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:        "admin reads any order",
			requester:   otherUserID,
			role:        entity.RoleAdmin,
			order:       storedOrder,
			getOrderErr: nil,

			want: want{
				statusCode: http.StatusOK,
			},
		},
		{
			name:        "foreign order is hidden",
			requester:   otherUserID,
			role:        entity.RoleCustomer,
			order:       storedOrder,
			getOrderErr: nil,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
		{
			name:        "order not found",
			requester:   testUserID,
			role:        entity.RoleCustomer,
			order:       entity.Order{},
			getOrderErr: err_storage.ErrOrderNotFound,

			want: want{
				statusCode: http.StatusNotFound,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(test.order, test.getOrderErr)

			request := httptest.NewRequest(http.MethodGet, "/api/orders/"+testOrderID.String(), nil)
			request = authorizedRequest(request, test.requester, test.role)
			request = withOrderID(request, testOrderID)
			writer := httptest.NewRecorder()

			processor := New(s, cart.NewStore(), notification.NewCenter(0))
			handler := processor.GetOrder()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}

func TestUpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)

	storedOrder := entity.Order{
		ID:     testOrderID,
		Number: "LP-1756300000000-042",
		UserID: testUserID,
		Status: entity.StatusPickedUp,
	}

	type want struct {
		statusCode    int
		notifications int
	}
	tests := []struct {
		name        string
		body        string
		getOrderErr error
		isGetOrder  bool
		updateErr   error
		isUpdate    bool

		want want
	}{
		{
			name:        "known status",
			body:        `{"status": "washing"}`,
			getOrderErr: nil,
			isGetOrder:  true,
			updateErr:   nil,
			isUpdate:    true,

			want: want{
				statusCode:    http.StatusOK,
				notifications: 1,
			},
		},
		{
			name:        "cancellation with reason",
			body:        `{"status": "cancelled", "cancellationReason": "customer request"}`,
			getOrderErr: nil,
			isGetOrder:  true,
			updateErr:   nil,
			isUpdate:    true,

			want: want{
				statusCode:    http.StatusOK,
				notifications: 1,
			},
		},
		{
			name:        "unknown status",
			body:        `{"status": "folded"}`,
			getOrderErr: nil,
			isGetOrder:  true,
			updateErr:   nil,
			isUpdate:    false,

			want: want{
				statusCode:    http.StatusUnprocessableEntity,
				notifications: 0,
			},
		},
		{
			name:        "order not found",
			body:        `{"status": "washing"}`,
			getOrderErr: err_storage.ErrOrderNotFound,
			isGetOrder:  true,
			updateErr:   nil,
			isUpdate:    false,

			want: want{
				statusCode:    http.StatusNotFound,
				notifications: 0,
			},
		},
		{
			name:        "invalid request body",
			body:        `<invalid json>`,
			getOrderErr: nil,
			isGetOrder:  false,
			updateErr:   nil,
			isUpdate:    false,

			want: want{
				statusCode:    http.StatusBadRequest,
				notifications: 0,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			notifications := notification.NewCenter(0)

			if test.isGetOrder {
				s.EXPECT().GetOrder(gomock.Any(), testOrderID).Return(storedOrder, test.getOrderErr)
			} else {
				s.EXPECT().GetOrder(gomock.Any(), gomock.Any()).Times(0)
			}

			if test.isUpdate {
				updated := storedOrder
				updated.Status = entity.StatusWashing
				s.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderID, gomock.Any()).Return(updated, test.updateErr)
			} else {
				s.EXPECT().UpdateOrderStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			request := httptest.NewRequest(http.MethodPut, "/api/admin/orders/"+testOrderID.String()+"/status", strings.NewReader(test.body))
			request = withOrderID(request, testOrderID)
			writer := httptest.NewRecorder()

			processor := New(s, cart.NewStore(), notifications)
			handler := processor.UpdateStatus()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			assert.Len(t, notifications.List(testUserID), test.want.notifications)

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}
