package checkout

import (
	"errors"
	"fmt"
	"strings"
)

const defaultPaymentMethod = "cash"

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a missing or malformed delivery form field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

// DeliveryForm is what the customer fills in at checkout.
type DeliveryForm struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes"`
}

// Normalize trims every field and fills the default payment method.
func (f *DeliveryForm) Normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Email = strings.TrimSpace(f.Email)
	f.Address = strings.TrimSpace(f.Address)
	f.PaymentMethod = strings.TrimSpace(f.PaymentMethod)
	f.Notes = strings.TrimSpace(f.Notes)
	if f.PaymentMethod == "" {
		f.PaymentMethod = defaultPaymentMethod
	}
}

func (f DeliveryForm) Validate() error {
	switch {
	case f.Name == "":
		return &ValidationError{Field: "name", Msg: "is required"}
	case f.Phone == "":
		return &ValidationError{Field: "phone", Msg: "is required"}
	case f.Address == "":
		return &ValidationError{Field: "address", Msg: "is required"}
	case f.Email != "" && !strings.Contains(f.Email, "@"):
		return &ValidationError{Field: "email", Msg: "is not a valid address"}
	}
	return nil
}
