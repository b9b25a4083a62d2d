package converter

import (
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
)

func ConvertCartStateToResponse(state entity.CartState) model.CartResponse {
	items := make([]model.CartItemResponse, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, model.CartItemResponse{
			ServiceID:   item.Service.ID.String(),
			ServiceName: item.Service.Name,
			Unit:        item.Service.Unit,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return model.CartResponse{
		Items:               items,
		ItemCount:           cart.ItemCount(state),
		PickupAddress:       convertAddressToPayloadPtr(state.PickupAddress),
		DeliveryAddress:     convertAddressToPayloadPtr(state.DeliveryAddress),
		PickupDate:          state.PickupDate,
		DeliveryDate:        state.DeliveryDate,
		SpecialInstructions: state.SpecialInstructions,
		Subtotal:            cart.Round2(cart.Subtotal(state)),
		Tax:                 cart.Round2(cart.Tax(state)),
		DeliveryFee:         cart.DeliveryFee,
		Total:               cart.Total(state),
	}
}

func ConvertPayloadToAddress(payload model.AddressPayload) entity.Address {
	return entity.Address{
		Label:        payload.Label,
		Street:       payload.Street,
		City:         payload.City,
		State:        payload.State,
		ZipCode:      payload.ZipCode,
		Country:      payload.Country,
		Instructions: payload.Instructions,
	}
}

func ConvertAddressToPayload(address entity.Address) model.AddressPayload {
	return model.AddressPayload{
		Label:        address.Label,
		Street:       address.Street,
		City:         address.City,
		State:        address.State,
		ZipCode:      address.ZipCode,
		Country:      address.Country,
		Instructions: address.Instructions,
	}
}

func convertAddressToPayloadPtr(address *entity.Address) *model.AddressPayload {
	if address == nil {
		return nil
	}

	payload := ConvertAddressToPayload(*address)

	return &payload
}
