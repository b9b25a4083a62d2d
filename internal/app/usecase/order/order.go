package order

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
)

// GenerateOrderNumber builds customer-facing numbers like LP-1718000000000-042.
func GenerateOrderNumber() entity.OrderNumber {
	return entity.OrderNumber(fmt.Sprintf("LP-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000)))
}

// CreateFromCart snapshots a validated cart into a persistable order with
// status pending. Prices come from the cart lines, not the live catalog.
func CreateFromCart(userID entity.UserID, state entity.CartState) entity.Order {
	lines := make([]entity.OrderLine, 0, len(state.Items))
	for _, item := range state.Items {
		lines = append(lines, entity.OrderLine{
			ServiceID:   item.Service.ID,
			ServiceName: item.Service.Name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	subtotal := cart.Subtotal(state)
	now := time.Now()

	return entity.Order{
		ID:                  entity.OrderID(uuid.New().String()),
		Number:              GenerateOrderNumber(),
		UserID:              userID,
		Lines:               lines,
		Subtotal:            cart.Round2(subtotal),
		Tax:                 cart.Round2(subtotal * cart.TaxRate),
		DeliveryFee:         cart.DeliveryFee,
		TotalAmount:         cart.Total(state),
		Status:              entity.StatusPending,
		PaymentStatus:       entity.PaymentPending,
		PickupAddress:       *state.PickupAddress,
		DeliveryAddress:     *state.DeliveryAddress,
		PickupDate:          state.PickupDate,
		DeliveryDate:        state.DeliveryDate,
		SpecialInstructions: state.SpecialInstructions,
		DateCreated:         now,
		DateUpdated:         now,
	}
}
