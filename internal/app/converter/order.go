package converter

import (
	"github.com/golang-module/carbon/v2"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/status"
)

func ConvertOrderToResponse(order entity.Order) model.OrderResponse {
	lines := make([]model.OrderLineResponse, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, model.OrderLineResponse{
			ServiceID:    line.ServiceID.String(),
			ServiceName:  line.ServiceName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   line.TotalPrice,
			Instructions: line.Instructions,
		})
	}

	return model.OrderResponse{
		ID:                  order.ID.String(),
		OrderNumber:         string(order.Number),
		Services:            lines,
		Subtotal:            order.Subtotal,
		Tax:                 order.Tax,
		DeliveryFee:         order.DeliveryFee,
		TotalAmount:         order.TotalAmount,
		Status:              string(order.Status),
		PaymentStatus:       string(order.PaymentStatus),
		PickupAddress:       ConvertAddressToPayload(order.PickupAddress),
		DeliveryAddress:     ConvertAddressToPayload(order.DeliveryAddress),
		PickupDate:          order.PickupDate,
		DeliveryDate:        order.DeliveryDate,
		SpecialInstructions: order.SpecialInstructions,
		AdminNotes:          order.AdminNotes,
		CancellationReason:  order.CancellationReason,
		CreatedAt:           carbon.CreateFromStdTime(order.DateCreated).ToRfc3339String(),
		UpdatedAt:           carbon.CreateFromStdTime(order.DateUpdated).ToRfc3339String(),
	}
}

func ConvertOrdersToResponses(orders entity.Orders) model.OrdersResponse {
	responses := make(model.OrdersResponse, 0, len(orders))
	for _, order := range orders {
		responses = append(responses, ConvertOrderToResponse(order))
	}

	return responses
}

// ConvertOrderToTrackingResponse renders the progress bar: every step before
// the current index counts as completed; cancelled orders carry no progress.
func ConvertOrderToTrackingResponse(order entity.Order) model.TrackingResponse {
	currentIndex := status.StepIndex(order.Status)

	steps := make([]model.TrackingStepResponse, 0, len(status.Steps()))
	for i, step := range status.Steps() {
		steps = append(steps, model.TrackingStepResponse{
			Status:      string(step.Status),
			Label:       step.Label,
			Description: step.Description,
			Completed:   currentIndex != status.StepNotFound && i < currentIndex,
			Current:     currentIndex != status.StepNotFound && i == currentIndex,
		})
	}

	return model.TrackingResponse{
		Order:     ConvertOrderToResponse(order),
		Steps:     steps,
		Cancelled: order.Status == entity.StatusCancelled,
		Terminal:  status.IsTerminal(order.Status),
	}
}
