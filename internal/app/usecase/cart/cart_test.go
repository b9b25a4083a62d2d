package cart

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	washFold = entity.Service{
		ID:    "svc1",
		Name:  "Wash & Fold",
		Price: 15.99,
		Unit:  "load",
	}

	dryClean = entity.Service{
		ID:    "svc2",
		Name:  "Dry Cleaning",
		Price: 8.99,
		Unit:  "item",
	}
)

func TestAddItemAccumulates(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, AddItem(washFold, 3))

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
	assert.Equal(t, washFold.Price, state.Items[0].UnitPrice)
	assert.InDelta(t, 5*washFold.Price, state.Items[0].TotalPrice, 1e-9)
}

func TestAddItemClampsQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int

		wantQuantity int
	}{
		{
			name:     "zero quantity",
			quantity: 0,

			wantQuantity: 1,
		},
		{
			name:     "negative quantity",
			quantity: -5,

			wantQuantity: 1,
		},
		{
			name:     "positive quantity",
			quantity: 4,

			wantQuantity: 4,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := Apply(entity.CartState{}, AddItem(washFold, test.quantity))

			require.Len(t, state.Items, 1)
			assert.Equal(t, test.wantQuantity, state.Items[0].Quantity)
			assert.InDelta(t, float64(test.wantQuantity)*washFold.Price, state.Items[0].TotalPrice, 1e-9)
		})
	}
}

func TestRemoveItem(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, AddItem(dryClean, 1))

	state = Apply(state, RemoveItem(washFold.ID))

	require.Len(t, state.Items, 1)
	assert.Equal(t, dryClean.ID, state.Items[0].Service.ID)
}

func TestRemoveMissingItemIsTotal(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))

	after := Apply(state, RemoveItem("missing"))

	assert.Empty(t, cmp.Diff(state.Items, after.Items))
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int

		wantItems int
		wantTotal float64
	}{
		{
			name:     "positive quantity recomputes total",
			quantity: 3,

			wantItems: 1,
			wantTotal: 3 * 15.99,
		},
		{
			name:     "zero quantity removes item",
			quantity: 0,

			wantItems: 0,
		},
		{
			name:     "negative quantity removes item",
			quantity: -5,

			wantItems: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			state := Apply(entity.CartState{}, AddItem(washFold, 2))
			state = Apply(state, UpdateQuantity(washFold.ID, test.quantity))

			require.Len(t, state.Items, test.wantItems)
			if test.wantItems > 0 {
				assert.Equal(t, test.quantity, state.Items[0].Quantity)
				assert.InDelta(t, test.wantTotal, state.Items[0].TotalPrice, 1e-9)
			}
		})
	}
}

func TestClearCartPreservesDeliveryMetadata(t *testing.T) {
	address := entity.Address{Label: "Home", Street: "12 Main St", City: "Springfield"}

	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, SetPickupAddress(address))
	state = Apply(state, SetDeliveryAddress(address))
	state = Apply(state, SetPickupDate("2024-06-01"))
	state = Apply(state, SetDeliveryDate("2024-06-03"))
	state = Apply(state, SetSpecialInstructions("ring the bell"))

	state = Apply(state, ClearCart())

	assert.Empty(t, state.Items)
	require.NotNil(t, state.PickupAddress)
	require.NotNil(t, state.DeliveryAddress)
	assert.Equal(t, address, *state.PickupAddress)
	assert.Equal(t, "2024-06-01", state.PickupDate)
	assert.Equal(t, "2024-06-03", state.DeliveryDate)
	assert.Equal(t, "ring the bell", state.SpecialInstructions)
}

func TestUnknownActionIsNoOp(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, SetPickupDate("2024-06-01"))

	after := Apply(state, Action{Kind: ActionKind(42)})

	assert.Empty(t, cmp.Diff(state, after))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	before := Apply(entity.CartState{}, AddItem(washFold, 2))

	Apply(state, UpdateQuantity(washFold.ID, 7))
	Apply(state, RemoveItem(washFold.ID))
	Apply(state, AddItem(dryClean, 1))

	assert.Empty(t, cmp.Diff(before, state))
}

func TestTotalFormula(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, AddItem(dryClean, 4))

	subtotal := 2*15.99 + 4*8.99

	assert.InDelta(t, subtotal, Subtotal(state), 1e-9)
	assert.InDelta(t, subtotal*TaxRate, Tax(state), 1e-9)
	assert.InDelta(t, Round2(subtotal+subtotal*TaxRate+DeliveryFee), Total(state), 1e-9)
}

func TestEmptyCartTotal(t *testing.T) {
	assert.InDelta(t, Round2(DeliveryFee), Total(entity.CartState{}), 1e-9)
}

func TestItemCount(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, AddItem(dryClean, 3))

	assert.Equal(t, 5, ItemCount(state))
}

func TestEndToEndScenario(t *testing.T) {
	state := Apply(entity.CartState{}, AddItem(washFold, 2))
	state = Apply(state, UpdateQuantity(washFold.ID, 3))

	require.Len(t, state.Items, 1)
	assert.Equal(t, washFold.ID, state.Items[0].Service.ID)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.InDelta(t, 15.99, state.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 47.97, state.Items[0].TotalPrice, 1e-9)

	assert.InDelta(t, 57.80, Total(state), 1e-9)
}

func TestStoreDispatchOrder(t *testing.T) {
	store := NewStore()
	userID := entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")

	store.Dispatch(userID, AddItem(washFold, 2))
	store.Dispatch(userID, AddItem(dryClean, 1))
	state := store.Dispatch(userID, UpdateQuantity(washFold.ID, 3))

	require.Len(t, state.Items, 2)
	assert.Equal(t, 3, state.Items[0].Quantity)
	assert.Empty(t, cmp.Diff(state, store.Get(userID)))
}

func TestStoreResetDropsEverything(t *testing.T) {
	store := NewStore()
	userID := entity.UserID("ac2a4811-4f10-487f-bde3-e39a14af7cd8")

	store.Dispatch(userID, AddItem(washFold, 2))
	store.Dispatch(userID, SetPickupDate("2024-06-01"))

	store.Reset(userID)

	assert.Empty(t, cmp.Diff(entity.CartState{}, store.Get(userID)))
}

func TestStoresAreSessionScoped(t *testing.T) {
	store := NewStore()

	store.Dispatch("user-a", AddItem(washFold, 2))
	store.Dispatch("user-b", AddItem(dryClean, 1))

	require.Len(t, store.Get("user-a").Items, 1)
	require.Len(t, store.Get("user-b").Items, 1)
	assert.Equal(t, washFold.ID, store.Get("user-a").Items[0].Service.ID)
	assert.Equal(t, dryClean.ID, store.Get("user-b").Items[0].Service.ID)
}
