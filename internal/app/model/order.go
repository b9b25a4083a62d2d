package model

type UpdateOrderStatusRequest struct {
	Status             string `json:"status"`
	Notes              string `json:"notes,omitempty"`
	CancellationReason string `json:"cancellationReason,omitempty"`
}

type OrderLineResponse struct {
	ServiceID    string  `json:"serviceId"`
	ServiceName  string  `json:"serviceName"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
	TotalPrice   float64 `json:"totalPrice"`
	Instructions string  `json:"instructions,omitempty"`
}

type OrdersResponse []OrderResponse

type OrderResponse struct {
	ID                  string              `json:"id"`
	OrderNumber         string              `json:"orderNumber"`
	Services            []OrderLineResponse `json:"services"`
	Subtotal            float64             `json:"subtotal"`
	Tax                 float64             `json:"tax"`
	DeliveryFee         float64             `json:"deliveryFee"`
	TotalAmount         float64             `json:"totalAmount"`
	Status              string              `json:"status"`
	PaymentStatus       string              `json:"paymentStatus"`
	PickupAddress       AddressPayload      `json:"pickupAddress"`
	DeliveryAddress     AddressPayload      `json:"deliveryAddress"`
	PickupDate          string              `json:"pickupDate"`
	DeliveryDate        string              `json:"deliveryDate"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	AdminNotes          string              `json:"adminNotes,omitempty"`
	CancellationReason  string              `json:"cancellationReason,omitempty"`
	CreatedAt           string              `json:"createdAt"`
	UpdatedAt           string              `json:"updatedAt"`
}

type TrackingStepResponse struct {
	Status      string `json:"status"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Current     bool   `json:"current"`
}

type TrackingResponse struct {
	Order     OrderResponse          `json:"order"`
	Steps     []TrackingStepResponse `json:"steps"`
	Cancelled bool                   `json:"cancelled"`
	Terminal  bool                   `json:"terminal"`
}
