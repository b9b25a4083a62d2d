package storage

import (
	"time"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
)

type userDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Email       string    `bson:"email"`
	Password    string    `bson:"password"`
	Phone       string    `bson:"phone"`
	Role        string    `bson:"role"`
	IsActive    bool      `bson:"is_active"`
	DateCreated time.Time `bson:"created_at"`
}

type addressDocument struct {
	Label        string `bson:"label"`
	Street       string `bson:"street"`
	City         string `bson:"city"`
	State        string `bson:"state"`
	ZipCode      string `bson:"zip_code"`
	Country      string `bson:"country"`
	Instructions string `bson:"instructions,omitempty"`
}

type serviceDocument struct {
	ID            string    `bson:"_id"`
	Name          string    `bson:"name"`
	Description   string    `bson:"description"`
	Price         float64   `bson:"price"`
	Category      string    `bson:"category"`
	Image         string    `bson:"image"`
	EstimatedTime string    `bson:"estimated_time"`
	MinimumOrder  int       `bson:"minimum_order"`
	Unit          string    `bson:"unit"`
	Features      []string  `bson:"features"`
	IsActive      bool      `bson:"is_active"`
	DateCreated   time.Time `bson:"created_at"`
	DateUpdated   time.Time `bson:"updated_at"`
}

type orderLineDocument struct {
	ServiceID    string  `bson:"service_id"`
	ServiceName  string  `bson:"service_name"`
	Quantity     int     `bson:"quantity"`
	UnitPrice    float64 `bson:"unit_price"`
	TotalPrice   float64 `bson:"total_price"`
	Instructions string  `bson:"instructions,omitempty"`
}

type orderDocument struct {
	ID                  string              `bson:"_id"`
	Number              string              `bson:"number"`
	UserID              string              `bson:"user_id"`
	Lines               []orderLineDocument `bson:"services"`
	Subtotal            float64             `bson:"subtotal"`
	Tax                 float64             `bson:"tax"`
	DeliveryFee         float64             `bson:"delivery_fee"`
	TotalAmount         float64             `bson:"total_amount"`
	Status              string              `bson:"status"`
	PaymentStatus       string              `bson:"payment_status"`
	PickupAddress       addressDocument     `bson:"pickup_address"`
	DeliveryAddress     addressDocument     `bson:"delivery_address"`
	PickupDate          string              `bson:"pickup_date"`
	DeliveryDate        string              `bson:"delivery_date"`
	SpecialInstructions string              `bson:"special_instructions,omitempty"`
	AdminNotes          string              `bson:"admin_notes,omitempty"`
	CancellationReason  string              `bson:"cancellation_reason,omitempty"`
	DateCreated         time.Time           `bson:"created_at"`
	DateUpdated         time.Time           `bson:"updated_at"`
	CompletedAt         *time.Time          `bson:"completed_at,omitempty"`
	CancelledAt         *time.Time          `bson:"cancelled_at,omitempty"`
}

func createUserDocument(user entity.User) userDocument {
	return userDocument{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Password:    user.Password,
		Phone:       user.Phone,
		Role:        string(user.Role),
		IsActive:    user.IsActive,
		DateCreated: user.DateCreated,
	}
}

func (d userDocument) toEntity() entity.User {
	return entity.User{
		ID:          entity.UserID(d.ID),
		Name:        d.Name,
		Email:       d.Email,
		Password:    d.Password,
		Phone:       d.Phone,
		Role:        entity.UserRole(d.Role),
		IsActive:    d.IsActive,
		DateCreated: d.DateCreated,
	}
}

func createAddressDocument(address entity.Address) addressDocument {
	return addressDocument{
		Label:        address.Label,
		Street:       address.Street,
		City:         address.City,
		State:        address.State,
		ZipCode:      address.ZipCode,
		Country:      address.Country,
		Instructions: address.Instructions,
	}
}

func (d addressDocument) toEntity() entity.Address {
	return entity.Address{
		Label:        d.Label,
		Street:       d.Street,
		City:         d.City,
		State:        d.State,
		ZipCode:      d.ZipCode,
		Country:      d.Country,
		Instructions: d.Instructions,
	}
}

func createServiceDocument(service entity.Service) serviceDocument {
	return serviceDocument{
		ID:            service.ID.String(),
		Name:          service.Name,
		Description:   service.Description,
		Price:         service.Price,
		Category:      string(service.Category),
		Image:         service.Image,
		EstimatedTime: service.EstimatedTime,
		MinimumOrder:  service.MinimumOrder,
		Unit:          service.Unit,
		Features:      service.Features,
		IsActive:      service.IsActive,
		DateCreated:   service.DateCreated,
		DateUpdated:   service.DateUpdated,
	}
}

func (d serviceDocument) toEntity() entity.Service {
	return entity.Service{
		ID:            entity.ServiceID(d.ID),
		Name:          d.Name,
		Description:   d.Description,
		Price:         d.Price,
		Category:      entity.ServiceCategory(d.Category),
		Image:         d.Image,
		EstimatedTime: d.EstimatedTime,
		MinimumOrder:  d.MinimumOrder,
		Unit:          d.Unit,
		Features:      d.Features,
		IsActive:      d.IsActive,
		DateCreated:   d.DateCreated,
		DateUpdated:   d.DateUpdated,
	}
}

func createOrderDocument(order entity.Order) orderDocument {
	lines := make([]orderLineDocument, 0, len(order.Lines))
	for _, line := range order.Lines {
		lines = append(lines, orderLineDocument{
			ServiceID:    line.ServiceID.String(),
			ServiceName:  line.ServiceName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   line.TotalPrice,
			Instructions: line.Instructions,
		})
	}

	return orderDocument{
		ID:                  order.ID.String(),
		Number:              string(order.Number),
		UserID:              order.UserID.String(),
		Lines:               lines,
		Subtotal:            order.Subtotal,
		Tax:                 order.Tax,
		DeliveryFee:         order.DeliveryFee,
		TotalAmount:         order.TotalAmount,
		Status:              string(order.Status),
		PaymentStatus:       string(order.PaymentStatus),
		PickupAddress:       createAddressDocument(order.PickupAddress),
		DeliveryAddress:     createAddressDocument(order.DeliveryAddress),
		PickupDate:          order.PickupDate,
		DeliveryDate:        order.DeliveryDate,
		SpecialInstructions: order.SpecialInstructions,
		AdminNotes:          order.AdminNotes,
		CancellationReason:  order.CancellationReason,
		DateCreated:         order.DateCreated,
		DateUpdated:         order.DateUpdated,
	}
}

func (d orderDocument) toEntity() entity.Order {
	lines := make([]entity.OrderLine, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, entity.OrderLine{
			ServiceID:    entity.ServiceID(line.ServiceID),
			ServiceName:  line.ServiceName,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			TotalPrice:   line.TotalPrice,
			Instructions: line.Instructions,
		})
	}

	return entity.Order{
		ID:                  entity.OrderID(d.ID),
		Number:              entity.OrderNumber(d.Number),
		UserID:              entity.UserID(d.UserID),
		Lines:               lines,
		Subtotal:            d.Subtotal,
		Tax:                 d.Tax,
		DeliveryFee:         d.DeliveryFee,
		TotalAmount:         d.TotalAmount,
		Status:              entity.OrderStatus(d.Status),
		PaymentStatus:       entity.PaymentStatus(d.PaymentStatus),
		PickupAddress:       d.PickupAddress.toEntity(),
		DeliveryAddress:     d.DeliveryAddress.toEntity(),
		PickupDate:          d.PickupDate,
		DeliveryDate:        d.DeliveryDate,
		SpecialInstructions: d.SpecialInstructions,
		AdminNotes:          d.AdminNotes,
		CancellationReason:  d.CancellationReason,
		DateCreated:         d.DateCreated,
		DateUpdated:         d.DateUpdated,
	}
}
