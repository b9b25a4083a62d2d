package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	httputils "github.com/laundrypro/go-laundry-service/internal/app/controller/http/utils"
	"github.com/laundrypro/go-laundry-service/internal/app/converter"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	err_storage "github.com/laundrypro/go-laundry-service/internal/app/storage/api/errors"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/validator"
	"go.uber.org/zap"
)

const (
	ErrInvalidServiceRequest = "wrong service format"
	ErrServiceNotFound       = "service not found"
)

type ServiceCatalog interface {
	GetServices(ctx context.Context, activeOnly bool) (entity.Services, error)
	GetService(ctx context.Context, serviceID entity.ServiceID) (entity.Service, error)
	CreateService(ctx context.Context, service entity.Service) error
	UpdateService(ctx context.Context, service entity.Service) error
	DeleteService(ctx context.Context, serviceID entity.ServiceID) error
}

type Services struct {
	storage ServiceCatalog
}

func New(storage ServiceCatalog) Services {
	return Services{
		storage: storage,
	}
}

// ListActive is the public catalog view customers browse.
func (s *Services) ListActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		services, err := s.storage.GetServices(ctx, true)
		if err != nil {
			zap.L().Error("error while getting active services", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertServicesToResponses(services))
	}
}

// ListAll includes inactive services, for the admin catalog view.
func (s *Services) ListAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
		defer cancel()

		services, err := s.storage.GetServices(ctx, false)
		if err != nil {
			zap.L().Error("error while getting all services", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertServicesToResponses(services))
	}
}

func (s *Services) CreateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		request, ok := s.parseServiceRequest(w, r)
		if !ok {
			return
		}

		service := converter.ConvertRequestToService(entity.ServiceID(uuid.New().String()), request)
		service.DateCreated = time.Now()
		service.DateUpdated = service.DateCreated

		ctx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
		defer cancel()

		if err := s.storage.CreateService(ctx, service); err != nil {
			zap.L().Error("error while creating service", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusCreated, converter.ConvertServiceToResponse(service))
	}
}

func (s *Services) UpdateService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := entity.ServiceID(chi.URLParam(r, "serviceID"))

		request, ok := s.parseServiceRequest(w, r)
		if !ok {
			return
		}

		stored, err := s.getService(serviceID, w)
		if err != nil {
			zap.L().Error("error while getting service while updating one", zap.Error(err))
			return
		}

		service := converter.ConvertRequestToService(serviceID, request)
		service.DateCreated = stored.DateCreated

		ctx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
		defer cancel()

		if err := s.storage.UpdateService(ctx, service); err != nil {
			zap.L().Error("error while updating service", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		httputils.WriteSuccess(w, http.StatusOK, converter.ConvertServiceToResponse(service))
	}
}

func (s *Services) DeleteService() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serviceID := entity.ServiceID(chi.URLParam(r, "serviceID"))

		ctx, cancel := context.WithTimeout(context.Background(), httputils.UpdateTimeout)
		defer cancel()

		err := s.storage.DeleteService(ctx, serviceID)
		if err != nil {
			if errors.Is(err, err_storage.ErrServiceNotFound) {
				httputils.WriteError(w, http.StatusNotFound, ErrServiceNotFound)
			} else {
				zap.L().Error("error while deleting service", zap.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Services) parseServiceRequest(w http.ResponseWriter, r *http.Request) (model.ServiceRequest, bool) {
	var request model.ServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httputils.WriteError(w, http.StatusBadRequest, ErrInvalidServiceRequest)
		return model.ServiceRequest{}, false
	}
	defer r.Body.Close()

	if err := validator.ValidateServiceRequest(request); err != nil {
		httputils.WriteError(w, http.StatusBadRequest, err.Error())
		return model.ServiceRequest{}, false
	}

	return request, true
}

func (s *Services) getService(serviceID entity.ServiceID, w http.ResponseWriter) (entity.Service, error) {
	ctx, cancel := context.WithTimeout(context.Background(), httputils.RequestTimeout)
	defer cancel()

	service, err := s.storage.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, err_storage.ErrServiceNotFound) {
			httputils.WriteError(w, http.StatusNotFound, ErrServiceNotFound)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}

		return entity.Service{}, err
	}

	return service, nil
}
