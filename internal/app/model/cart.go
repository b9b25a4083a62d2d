package model

type AddCartItemRequest struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type AddressPayload struct {
	Label        string `json:"label"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Instructions string `json:"instructions,omitempty"`
}

// CartDetailsRequest updates delivery metadata; nil fields are left untouched.
type CartDetailsRequest struct {
	PickupAddress       *AddressPayload `json:"pickupAddress,omitempty"`
	DeliveryAddress     *AddressPayload `json:"deliveryAddress,omitempty"`
	PickupDate          *string         `json:"pickupDate,omitempty"`
	DeliveryDate        *string         `json:"deliveryDate,omitempty"`
	SpecialInstructions *string         `json:"specialInstructions,omitempty"`
}

type CartItemResponse struct {
	ServiceID   string  `json:"serviceId"`
	ServiceName string  `json:"serviceName"`
	Unit        string  `json:"unit"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
}

type CartResponse struct {
	Items               []CartItemResponse `json:"items"`
	ItemCount           int                `json:"itemCount"`
	PickupAddress       *AddressPayload    `json:"pickupAddress,omitempty"`
	DeliveryAddress     *AddressPayload    `json:"deliveryAddress,omitempty"`
	PickupDate          string             `json:"pickupDate,omitempty"`
	DeliveryDate        string             `json:"deliveryDate,omitempty"`
	SpecialInstructions string             `json:"specialInstructions,omitempty"`
	Subtotal            float64            `json:"subtotal"`
	Tax                 float64            `json:"tax"`
	DeliveryFee         float64            `json:"deliveryFee"`
	Total               float64            `json:"total"`
}
