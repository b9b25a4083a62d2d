package entity

import "time"

type OrderID string

func (id OrderID) String() string {
	return string(id)
}

type OrderNumber string

type OrderStatus string

const (
	StatusPending        OrderStatus = `pending`
	StatusConfirmed      OrderStatus = `confirmed`
	StatusPickedUp       OrderStatus = `picked_up`
	StatusWashing        OrderStatus = `washing`
	StatusIroning        OrderStatus = `ironing`
	StatusReady          OrderStatus = `ready`
	StatusOutForDelivery OrderStatus = `out_for_delivery`
	StatusDelivered      OrderStatus = `delivered`
	StatusCancelled      OrderStatus = `cancelled`
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = `pending`
	PaymentPaid     PaymentStatus = `paid`
	PaymentFailed   PaymentStatus = `failed`
	PaymentRefunded PaymentStatus = `refunded`
)

type Orders []Order

// OrderLine is a priced snapshot of one cart item at submission time.
type OrderLine struct {
	ServiceID    ServiceID
	ServiceName  string
	Quantity     int
	UnitPrice    float64
	TotalPrice   float64
	Instructions string
}

type Order struct {
	ID                  OrderID
	Number              OrderNumber
	UserID              UserID
	Lines               []OrderLine
	Subtotal            float64
	Tax                 float64
	DeliveryFee         float64
	TotalAmount         float64
	Status              OrderStatus
	PaymentStatus       PaymentStatus
	PickupAddress       Address
	DeliveryAddress     Address
	PickupDate          string
	DeliveryDate        string
	SpecialInstructions string
	AdminNotes          string
	CancellationReason  string
	DateCreated         time.Time
	DateUpdated         time.Time
}

type OrderStatusUpdate struct {
	Status             OrderStatus
	AdminNotes         string
	CancellationReason string
}

type OrderFilter struct {
	Status   OrderStatus
	UserID   UserID
	DateFrom time.Time
	DateTo   time.Time
}
