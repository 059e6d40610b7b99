package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"paykit/currency"
	"paykit/payment"
)

// Flow is how the customer completes a source-backed payment.
type Flow string

const (
	FlowRedirect    Flow = "redirect"
	FlowOffline     Flow = "offline"
	FlowAppRedirect Flow = "app_redirect"
)

// Source is a created payment source as returned by the gateway.
type Source struct {
	ID       string
	Object   string
	LiveMode bool
	Location string
	// Amount is in currency subunits.
	Amount   int64
	Currency currency.Currency
	Flow     Flow
	// PaymentInformation is the decoded method, including its
	// method-specific fields echoed back by the gateway.
	PaymentInformation payment.Method
}

// UnmarshalJSON decodes the envelope fields and hands the whole payload to the
// payment method decoder, which owns the type tag and its siblings.
func (s *Source) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       string            `json:"id"`
		Object   string            `json:"object"`
		LiveMode bool              `json:"livemode"`
		Location string            `json:"location"`
		Amount   int64             `json:"amount"`
		Currency currency.Currency `json:"currency"`
		Flow     Flow              `json:"flow"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	method, err := payment.DecodeMethod(data)
	if err != nil {
		return err
	}
	*s = Source{
		ID:                 raw.ID,
		Object:             raw.Object,
		LiveMode:           raw.LiveMode,
		Location:           raw.Location,
		Amount:             raw.Amount,
		Currency:           raw.Currency,
		Flow:               raw.Flow,
		PaymentInformation: method,
	}
	return nil
}

// BuildCreateSourceBody renders the create-source request envelope: amount,
// uppercase currency code, the platform identifier, and the encoded method.
// Atome lifts its customer and order fields onto the envelope itself; every
// other method's fields stay where EncodeMethod put them.
func BuildCreateSourceBody(m payment.Method, amount int64, cur currency.Currency) map[string]any {
	body := EncodeMethodBody(m)
	body["amount"] = amount
	body["currency"] = strings.ToUpper(cur.Code())
	body["platform_type"] = platformType
	return body
}

// EncodeMethodBody flattens one method into request fields, applying the
// per-method top-level placements the gateway requires.
func EncodeMethodBody(m payment.Method) map[string]any {
	body := payment.EncodeMethod(m)
	if atome, ok := m.(payment.Atome); ok {
		body["phone_number"] = atome.PhoneNumber
		if atome.Name != "" {
			body["name"] = atome.Name
		}
		if atome.Email != "" {
			body["email"] = atome.Email
		}
		body["shipping"] = atome.Shipping
		body["items"] = atome.Items
	}
	return body
}

// CreateSource creates a payment source for the method, amount, and currency.
func (c *Client) CreateSource(ctx context.Context, m payment.Method, amount int64, cur currency.Currency) (*Source, error) {
	if m == nil {
		return nil, fmt.Errorf("create source: method is required")
	}
	body := BuildCreateSourceBody(m, amount, cur)

	status, data, err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/sources", body, true)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}

	var source Source
	if err := parseResponse(status, data, &source); err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	return &source, nil
}
