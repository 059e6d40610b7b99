package payment

import "fmt"

// AtomeShippingAddress is the delivery address required by Atome.
type AtomeShippingAddress struct {
	Country    string `json:"country" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	State      string `json:"state" validate:"required"`
	Street1    string `json:"street1" validate:"required"`
	Street2    string `json:"street2"`
}

// AtomeItem is one purchased line item reported to Atome.
type AtomeItem struct {
	SKU      string `json:"sku" validate:"required"`
	Category string `json:"category,omitempty"`
	Name     string `json:"name" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
	// Amount is the item price in currency subunits.
	Amount   int64  `json:"amount" validate:"gt=0"`
	ItemURI  string `json:"item_uri,omitempty"`
	ImageURI string `json:"image_uri,omitempty"`
	Brand    string `json:"brand,omitempty"`
}

// Atome is a buy-now-pay-later payment through Atome. Unlike most methods its
// customer, shipping, and item fields travel at the top level of the
// create-source envelope rather than next to the type tag.
type Atome struct {
	// PhoneNumber contains only digits and has 10 or 11 characters.
	PhoneNumber string `json:"phone_number" validate:"required,numeric,min=10,max=11"`
	// Name is optional.
	Name string `json:"name,omitempty"`
	// Email is optional.
	Email string `json:"email,omitempty" validate:"omitempty,email"`
	// Shipping is the delivery address.
	Shipping AtomeShippingAddress `json:"shipping" validate:"required"`
	// Items lists the purchased goods. At least one is required.
	Items []AtomeItem `json:"items" validate:"required,min=1,dive"`
}

func (Atome) SourceType() SourceType { return SourceAtome }

// NewAtome validates and builds an Atome payment.
func NewAtome(phoneNumber, name, email string, shipping AtomeShippingAddress, items []AtomeItem) (Atome, error) {
	m := Atome{
		PhoneNumber: phoneNumber,
		Name:        name,
		Email:       email,
		Shipping:    shipping,
		Items:       items,
	}
	if err := validate.Struct(m); err != nil {
		return Atome{}, fmt.Errorf("atome: %w", err)
	}
	return m, nil
}

func (m Atome) equal(other Atome) bool {
	if m.PhoneNumber != other.PhoneNumber || m.Name != other.Name ||
		m.Email != other.Email || m.Shipping != other.Shipping {
		return false
	}
	if len(m.Items) != len(other.Items) {
		return false
	}
	for i := range m.Items {
		if m.Items[i] != other.Items[i] {
			return false
		}
	}
	return true
}
