package validator

import (
	"fmt"
	"time"

	"github.com/laundrypro/go-laundry-service/internal/app/entity"
	"github.com/laundrypro/go-laundry-service/internal/app/model"
	"github.com/laundrypro/go-laundry-service/internal/app/usecase/cart"
)

const dateLayout = "2006-01-02"

// ValidateRegisterRequest mirrors the registration checks of the public
// signup form: all fields present, plausible email, password of at least
// six characters, phone of at least ten digits.
func ValidateRegisterRequest(request model.RegisterRequest) error {
	if len(request.Name) == 0 || len(request.Email) == 0 || len(request.Password) == 0 || len(request.Phone) == 0 {
		return fmt.Errorf("all fields are required")
	}

	if !emailRegexp.MatchString(request.Email) {
		return fmt.Errorf("invalid email format")
	}

	if len(request.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}

	if !phoneRegexp.MatchString(request.Phone) {
		return fmt.Errorf("invalid phone number format")
	}

	return nil
}

func ValidateLoginRequest(request model.LoginRequest) error {
	if len(request.Email) == 0 || len(request.Password) == 0 {
		return fmt.Errorf("email and password are required")
	}

	return nil
}

func ValidateServiceRequest(request model.ServiceRequest) error {
	if len(request.Name) == 0 {
		return fmt.Errorf("service name is required")
	}

	if request.Price <= 0 {
		return fmt.Errorf("service price must be positive")
	}

	if len(request.Unit) == 0 {
		return fmt.Errorf("service unit is required")
	}

	return nil
}

// ValidateOrderSubmission checks the cart is submittable: non-empty, both
// addresses and dates present, dates parseable, subtotal above the minimum.
func ValidateOrderSubmission(state entity.CartState) error {
	if len(state.Items) == 0 {
		return fmt.Errorf("cart is empty")
	}

	if state.PickupAddress == nil {
		return fmt.Errorf("pickup address is required")
	}

	if state.DeliveryAddress == nil {
		return fmt.Errorf("delivery address is required")
	}

	if _, err := time.Parse(dateLayout, state.PickupDate); err != nil {
		return fmt.Errorf("pickup date is invalid, expected YYYY-MM-DD")
	}

	if _, err := time.Parse(dateLayout, state.DeliveryDate); err != nil {
		return fmt.Errorf("delivery date is invalid, expected YYYY-MM-DD")
	}

	if cart.Subtotal(state) < cart.MinimumOrderValue {
		return fmt.Errorf("order subtotal is below the minimum of %.2f", cart.MinimumOrderValue)
	}

	return nil
}
