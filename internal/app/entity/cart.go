package entity

// CartItem keeps the price of the service at the moment it was added,
// so later catalog edits don't change a cart already being built.
// TotalPrice always equals UnitPrice * Quantity.
type CartItem struct {
	Service    Service
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// CartState is the whole pre-submission state of one customer session.
// Items are unique by service id.
type CartState struct {
	Items               []CartItem
	PickupAddress       *Address
	DeliveryAddress     *Address
	PickupDate          string
	DeliveryDate        string
	SpecialInstructions string
}
