package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	httputils "github.com/laundrypro/go-laundry-service/internal/app/controller/http/utils"
	"github.com/laundrypro/go-laundry-service/internal/app/converter"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/notification"
	"go.uber.org/zap"
)

const (
	ErrInvalidCartRequest = "wrong cart request format"
	ErrServiceNotFound    = "service not found"
	ErrServiceInactive    = "service is not available"
)

type ServiceProvider interface {
	GetService(ctx context.Context, serviceID entity.ServiceID) (entity.Service, error)
}

// Cart drives the session cart: handlers translate requests into reducer
// actions and dispatch them through the store.
type Cart struct {
	services      ServiceProvider
	store         *cart.Store
	notifications *notification.Center
}

func New(services ServiceProvider, store *cart.Store, notifications *notification.Center) Cart {
	return Cart{
		services:      services,
		store:         store,
		notifications: notifications,
	}
}

func (c *Cart) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting cart", zap.Error(err))
			return
		}

		state := c.store.Get(userIDCtx.UserID)
		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

func (c *Cart) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while adding cart item", zap.Error(err))
			return
		}

		var request model.AddCartItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidCartRequest)
			return
		}
		defer r.Body.Close()

		service, err := c.getActiveService(entity.ServiceID(request.ServiceID), w)
		if err != nil {
			zap.L().Error("error while getting service while adding cart item", zap.Error(err))
			return
		}

		state := c.store.Dispatch(userIDCtx.UserID, cart.AddItem(service, request.Quantity))

		c.notifications.Push(
			userIDCtx.UserID,
			entity.NotificationSuccess,
			"Added to Cart",
			fmt.Sprintf("%s added to your cart", service.Name),
		)

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

func (c *Cart) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while updating cart quantity", zap.Error(err))
			return
		}

		serviceID := entity.ServiceID(chi.URLParam(r, "serviceID"))

		var request model.UpdateCartQuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidCartRequest)
			return
		}
		defer r.Body.Close()

		state := c.store.Dispatch(userIDCtx.UserID, cart.UpdateQuantity(serviceID, request.Quantity))
		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

func (c *Cart) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while removing cart item", zap.Error(err))
			return
		}

		serviceID := entity.ServiceID(chi.URLParam(r, "serviceID"))

		state := c.store.Dispatch(userIDCtx.UserID, cart.RemoveItem(serviceID))
		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

func (c *Cart) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while clearing cart", zap.Error(err))
			return
		}

		state := c.store.Dispatch(userIDCtx.UserID, cart.ClearCart())
		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

// UpdateDetails applies only the delivery metadata fields present in the
// request, one reducer action per field.
func (c *Cart) UpdateDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while updating cart details", zap.Error(err))
			return
		}

		var request model.CartDetailsRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			httputils.WriteError(w, http.StatusBadRequest, ErrInvalidCartRequest)
			return
		}
		defer r.Body.Close()

		userID := userIDCtx.UserID
		state := c.store.Get(userID)

		if request.PickupAddress != nil {
			state = c.store.Dispatch(userID, cart.SetPickupAddress(converter.ConvertPayloadToAddress(*request.PickupAddress)))
		}
		if request.DeliveryAddress != nil {
			state = c.store.Dispatch(userID, cart.SetDeliveryAddress(converter.ConvertPayloadToAddress(*request.DeliveryAddress)))
		}
		if request.PickupDate != nil {
			state = c.store.Dispatch(userID, cart.SetPickupDate(*request.PickupDate))
		}
		if request.DeliveryDate != nil {
			state = c.store.Dispatch(userID, cart.SetDeliveryDate(*request.DeliveryDate))
		}
		if request.SpecialInstructions != nil {
			state = c.store.Dispatch(userID, cart.SetSpecialInstructions(*request.SpecialInstructions))
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertCartStateToResponse(state))
	}
}

func (c *Cart) GetNotifications() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting notifications", zap.Error(err))
			return
		}

		listed := c.notifications.List(userIDCtx.UserID)
		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertNotificationsToResponses(listed))
	}
}

func (c *Cart) DismissNotification() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userIDCtx, err := httputils.GetUserCtx(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while dismissing notification", zap.Error(err))
			return
		}

		notificationID := entity.NotificationID(chi.URLParam(r, "notificationID"))
		c.notifications.Remove(userIDCtx.UserID, notificationID)

		w.WriteHeader(http.StatusNoContent)
	}
}

func (c *Cart) getActiveService(serviceID entity.ServiceID, w http.ResponseWriter) (entity.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	service, err := c.services.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, err_storage.ErrServiceNotFound) {
			httputils.WriteError(w, http.StatusNotFound, ErrServiceNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		return entity.Service{}, err
	}

	if !service.IsActive {
		httputils.WriteError(w, http.StatusConflict, ErrServiceInactive)
		return entity.Service{}, fmt.Errorf("service %s is inactive", serviceID)
	}

	return service, nil
}
