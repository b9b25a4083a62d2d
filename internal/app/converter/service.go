package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
)

func ConvertServiceToResponse(service entity.Service) model.ServiceResponse {
	return model.ServiceResponse{
		ID:            service.ID.String(),
		Name:          service.Name,
		Description:   service.Description,
		Price:         service.Price,
		Category:      string(service.Category),
		Image:         service.Image,
		EstimatedTime: service.EstimatedTime,
		MinimumOrder:  service.MinimumOrder,
		Unit:          service.Unit,
		Features:      service.Features,
		IsActive:      service.IsActive,
		CreatedAt:     carbon.CreateFromStdTime(service.DateCreated).ToRfc3339String(),
	}
}

func ConvertServicesToResponses(services entity.Services) model.ServicesResponse {
	responses := make(model.ServicesResponse, 0, len(services))
	for _, service := range services {
		responses = append(responses, ConvertServiceToResponse(service))
	}

	return responses
}

func ConvertRequestToService(id entity.ServiceID, request model.ServiceRequest) entity.Service {
	return entity.Service{
		ID:            id,
		Name:          request.Name,
		Description:   request.Description,
		Price:         request.Price,
		Category:      entity.ServiceCategory(request.Category),
		Image:         request.Image,
		EstimatedTime: request.EstimatedTime,
		MinimumOrder:  request.MinimumOrder,
		Unit:          request.Unit,
		Features:      request.Features,
		IsActive:      request.IsActive,
	}
}
