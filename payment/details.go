package payment

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// EContext carries the customer details for Japanese convenience-store,
// net-banking, and pay-easy payments.
type EContext struct {
	// Name is the customer name. At most 10 characters.
	Name string `json:"name" validate:"required,max=10"`
	// Email is the customer email.
	Email string `json:"email" validate:"required,email"`
	// PhoneNumber contains only digits and has 10 or 11 characters.
	PhoneNumber string `json:"phone_number" validate:"required,numeric,min=10,max=11"`
}

func (EContext) SourceType() SourceType { return SourceEContext }

// NewEContext validates and builds the customer details for an e-context
// payment.
func NewEContext(name, email, phoneNumber string) (EContext, error) {
	m := EContext{Name: name, Email: email, PhoneNumber: phoneNumber}
	if err := validate.Struct(m); err != nil {
		return EContext{}, fmt.Errorf("econtext: %w", err)
	}
	return m, nil
}

// TrueMoney is a TrueMoney wallet payment.
type TrueMoney struct {
	// PhoneNumber contains only digits and has 10 or 11 characters.
	PhoneNumber string `json:"phone_number" validate:"required,numeric,min=10,max=11"`
}

func (TrueMoney) SourceType() SourceType { return SourceTrueMoney }

// NewTrueMoney validates and builds a TrueMoney wallet payment.
func NewTrueMoney(phoneNumber string) (TrueMoney, error) {
	m := TrueMoney{PhoneNumber: phoneNumber}
	if err := validate.Struct(m); err != nil {
		return TrueMoney{}, fmt.Errorf("truemoney: %w", err)
	}
	return m, nil
}

// NewFPX validates and builds an FPX payment. Email may be empty.
func NewFPX(bank, email string) (FPX, error) {
	if bank == "" {
		return FPX{}, fmt.Errorf("fpx: bank is required")
	}
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return FPX{}, fmt.Errorf("fpx: %w", err)
		}
	}
	return FPX{Bank: bank, Email: email}, nil
}
