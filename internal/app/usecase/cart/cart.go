package cart

import (
	"math"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

const (
	TaxRate           = 0.08
	DeliveryFee       = 5.99
	MinimumOrderValue = 15.00
)

type ActionKind int

const (
	ActionAddItem ActionKind = iota
	ActionRemoveItem
	ActionUpdateQuantity
	ActionClearCart
	ActionSetPickupAddress
	ActionSetDeliveryAddress
	ActionSetPickupDate
	ActionSetDeliveryDate
	ActionSetSpecialInstructions
)

// Action is a tagged union: Kind selects which payload fields are read.
type Action struct {
	Kind      ActionKind
	Service   entity.Service
	ServiceID entity.ServiceID
	Quantity  int
	Address   entity.Address
	Date      string
	Text      string
}

func AddItem(service entity.Service, quantity int) Action {
	return Action{Kind: ActionAddItem, Service: service, Quantity: quantity}
}

func RemoveItem(serviceID entity.ServiceID) Action {
	return Action{Kind: ActionRemoveItem, ServiceID: serviceID}
}

func UpdateQuantity(serviceID entity.ServiceID, quantity int) Action {
	return Action{Kind: ActionUpdateQuantity, ServiceID: serviceID, Quantity: quantity}
}

func ClearCart() Action {
	return Action{Kind: ActionClearCart}
}

func SetPickupAddress(address entity.Address) Action {
	return Action{Kind: ActionSetPickupAddress, Address: address}
}

func SetDeliveryAddress(address entity.Address) Action {
	return Action{Kind: ActionSetDeliveryAddress, Address: address}
}

func SetPickupDate(date string) Action {
	return Action{Kind: ActionSetPickupDate, Date: date}
}

func SetDeliveryDate(date string) Action {
	return Action{Kind: ActionSetDeliveryDate, Date: date}
}

func SetSpecialInstructions(text string) Action {
	return Action{Kind: ActionSetSpecialInstructions, Text: text}
}

// Apply computes the next cart state. It never mutates the input state and
// never fails: an unrecognized action kind returns the state unchanged.
func Apply(state entity.CartState, action Action) entity.CartState {
	switch action.Kind {
	case ActionAddItem:
		return addItem(state, action.Service, action.Quantity)
	case ActionRemoveItem:
		return removeItem(state, action.ServiceID)
	case ActionUpdateQuantity:
		if action.Quantity <= 0 {
			return removeItem(state, action.ServiceID)
		}
		return updateQuantity(state, action.ServiceID, action.Quantity)
	case ActionClearCart:
		// delivery metadata survives clearing, only the items go
		state.Items = nil
		return state
	case ActionSetPickupAddress:
		address := action.Address
		state.PickupAddress = &address
		return state
	case ActionSetDeliveryAddress:
		address := action.Address
		state.DeliveryAddress = &address
		return state
	case ActionSetPickupDate:
		state.PickupDate = action.Date
		return state
	case ActionSetDeliveryDate:
		state.DeliveryDate = action.Date
		return state
	case ActionSetSpecialInstructions:
		state.SpecialInstructions = action.Text
		return state
	default:
		return state
	}
}

// addItem clamps quantity to a minimum of 1, keeping line totals non-negative.
func addItem(state entity.CartState, service entity.Service, quantity int) entity.CartState {
	if quantity < 1 {
		quantity = 1
	}

	items := cloneItems(state.Items)
	for i, item := range items {
		if item.Service.ID == service.ID {
			items[i].Quantity += quantity
			items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
			state.Items = items

			return state
		}
	}

	items = append(items, entity.CartItem{
		Service:    service,
		Quantity:   quantity,
		UnitPrice:  service.Price,
		TotalPrice: service.Price * float64(quantity),
	})
	state.Items = items

	return state
}

func removeItem(state entity.CartState, serviceID entity.ServiceID) entity.CartState {
	items := make([]entity.CartItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Service.ID != serviceID {
			items = append(items, item)
		}
	}
	state.Items = items

	return state
}

func updateQuantity(state entity.CartState, serviceID entity.ServiceID, quantity int) entity.CartState {
	items := cloneItems(state.Items)
	for i, item := range items {
		if item.Service.ID == serviceID {
			items[i].Quantity = quantity
			items[i].TotalPrice = items[i].UnitPrice * float64(quantity)
		}
	}
	state.Items = items

	return state
}

func cloneItems(items []entity.CartItem) []entity.CartItem {
	cloned := make([]entity.CartItem, len(items))
	copy(cloned, items)

	return cloned
}

func Subtotal(state entity.CartState) float64 {
	var subtotal float64
	for _, item := range state.Items {
		subtotal += item.TotalPrice
	}

	return subtotal
}

func Tax(state entity.CartState) float64 {
	return Subtotal(state) * TaxRate
}

// Total is subtotal plus 8% tax plus the flat delivery fee, rounded to cents.
func Total(state entity.CartState) float64 {
	subtotal := Subtotal(state)

	return Round2(subtotal + subtotal*TaxRate + DeliveryFee)
}

func ItemCount(state entity.CartState) int {
	var count int
	for _, item := range state.Items {
		count += item.Quantity
	}

	return count
}

func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
