package order

import (
	"strings"
	"testing"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOrderNumber(t *testing.T) {
	number := GenerateOrderNumber()

	assert.True(t, strings.HasPrefix(string(number), "LP-"))
	assert.Len(t, strings.Split(string(number), "-"), 3)
}

func TestCreateFromCart(t *testing.T) {
	address := entity.Address{Label: "Home", Street: "12 Main St", City: "Springfield"}

	state := cart.Apply(entity.CartState{}, cart.AddItem(entity.Service{ID: "svc1", Name: "Wash & Fold", Price: 15.99}, 3))
	state = cart.Apply(state, cart.SetPickupAddress(address))
	state = cart.Apply(state, cart.SetDeliveryAddress(address))
	state = cart.Apply(state, cart.SetPickupDate("2024-06-01"))
	state = cart.Apply(state, cart.SetDeliveryDate("2024-06-03"))
	state = cart.Apply(state, cart.SetSpecialInstructions("gentle cycle"))

	created := CreateFromCart("ac2a4811-4f10-487f-bde3-e39a14af7cd8", state)

	require.Len(t, created.Lines, 1)
	assert.Equal(t, entity.ServiceID("svc1"), created.Lines[0].ServiceID)
	assert.Equal(t, 3, created.Lines[0].Quantity)
	assert.InDelta(t, 47.97, created.Lines[0].TotalPrice, 1e-9)

	assert.InDelta(t, 47.97, created.Subtotal, 1e-9)
	assert.InDelta(t, 3.84, created.Tax, 1e-9)
	assert.InDelta(t, 57.80, created.TotalAmount, 1e-9)

	assert.Equal(t, entity.StatusPending, created.Status)
	assert.Equal(t, entity.PaymentPending, created.PaymentStatus)
	assert.Equal(t, address, created.PickupAddress)
	assert.Equal(t, "gentle cycle", created.SpecialInstructions)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.Number)
}
