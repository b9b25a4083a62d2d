package status

import "github.com/laundrypro/go-laundry-service/internal/app/entity"

// StepNotFound marks statuses outside the happy-path progression,
// cancelled included.
const StepNotFound = -1

type Step struct {
	Status      entity.OrderStatus
	Label       string
	Description string
}

// progression is the canonical fulfillment order used by the tracking view.
var progression = []Step{
	{Status: entity.StatusPending, Label: "Order Placed", Description: "Your order has been received"},
	{Status: entity.StatusConfirmed, Label: "Confirmed", Description: "Order confirmed and scheduled"},
	{Status: entity.StatusPickedUp, Label: "Picked Up", Description: "Items collected from your location"},
	{Status: entity.StatusWashing, Label: "Washing", Description: "Items are being cleaned"},
	{Status: entity.StatusIroning, Label: "Ironing", Description: "Items are being pressed"},
	{Status: entity.StatusReady, Label: "Ready", Description: "Order is ready for delivery"},
	{Status: entity.StatusOutForDelivery, Label: "Out for Delivery", Description: "On the way to you"},
	{Status: entity.StatusDelivered, Label: "Delivered", Description: "Order delivered successfully"},
}

func Steps() []Step {
	steps := make([]Step, len(progression))
	copy(steps, progression)

	return steps
}

func StepIndex(status entity.OrderStatus) int {
	for i, step := range progression {
		if step.Status == status {
			return i
		}
	}

	return StepNotFound
}

func Known(status entity.OrderStatus) bool {
	return status == entity.StatusCancelled || StepIndex(status) != StepNotFound
}

func IsTerminal(status entity.OrderStatus) bool {
	return status == entity.StatusDelivered || status == entity.StatusCancelled
}

// CanTransitionTo accepts any known target status. Administrators may move an
// order backward in the progression or out of a terminal state; only unknown
// status values are rejected. Kept loose on purpose, see DESIGN.md.
func CanTransitionTo(current, next entity.OrderStatus) bool {
	return Known(next)
}
