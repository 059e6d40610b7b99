package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ChargeStatus is the state of the charge created from a token, as reported
// on the token resource.
type ChargeStatus string

const (
	ChargeStatusUnknown    ChargeStatus = "unknown"
	ChargeStatusPending    ChargeStatus = "pending"
	ChargeStatusSuccessful ChargeStatus = "successful"
	ChargeStatusFailed     ChargeStatus = "failed"
	ChargeStatusExpired    ChargeStatus = "expired"
	ChargeStatusReversed   ChargeStatus = "reversed"
)

// Final reports whether the status will no longer change.
func (s ChargeStatus) Final() bool {
	switch s {
	case ChargeStatusSuccessful, ChargeStatusFailed, ChargeStatusExpired, ChargeStatusReversed:
		return true
	default:
		return false
	}
}

// Card is the tokenized card metadata echoed back by the vault. It never
// contains the full card number.
type Card struct {
	ID                string `json:"id"`
	LiveMode          bool   `json:"livemode"`
	Brand             string `json:"brand"`
	Bank              string `json:"bank"`
	Name              string `json:"name"`
	LastDigits        string `json:"last_digits"`
	ExpirationMonth   int    `json:"expiration_month"`
	ExpirationYear    int    `json:"expiration_year"`
	Fingerprint       string `json:"fingerprint"`
	Financing         string `json:"financing"`
	SecurityCodeCheck bool   `json:"security_code_check"`
	CountryCode       string `json:"country"`
	City              string `json:"city"`
	PostalCode        string `json:"postal_code"`
}

// Token is a created card token.
type Token struct {
	ID           string       `json:"id"`
	Object       string       `json:"object"`
	LiveMode     bool         `json:"livemode"`
	Location     string       `json:"location"`
	Used         bool         `json:"used"`
	Card         Card         `json:"card"`
	ChargeStatus ChargeStatus `json:"charge_status"`
	CreatedAt    time.Time    `json:"created_at"`
}

// CardParams is the card detail submitted for tokenization.
type CardParams struct {
	Name            string `json:"name" validate:"required"`
	Number          string `json:"number" validate:"required,numeric"`
	ExpirationMonth int    `json:"expiration_month" validate:"min=1,max=12"`
	ExpirationYear  int    `json:"expiration_year" validate:"required"`
	SecurityCode    string `json:"security_code" validate:"required,numeric"`
	City            string `json:"city,omitempty"`
	PostalCode      string `json:"postal_code,omitempty"`
}

// CreateToken tokenizes a card against the vault.
func (c *Client) CreateToken(ctx context.Context, card CardParams) (*Token, error) {
	if err := validate.Struct(card); err != nil {
		return nil, fmt.Errorf("create token: invalid card: %w", err)
	}
	body := map[string]any{"card": card}

	status, data, err := c.doRequest(ctx, http.MethodPost, c.vaultURL+"/tokens", body, false)
	if err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}

	var token Token
	if err := parseResponse(status, data, &token); err != nil {
		return nil, fmt.Errorf("create token: %w", err)
	}
	return &token, nil
}

// Token retrieves a token by ID, typically to poll its charge status.
func (c *Client) Token(ctx context.Context, id string) (*Token, error) {
	status, data, err := c.doRequest(ctx, http.MethodGet, c.vaultURL+"/tokens/"+id, nil, false)
	if err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}

	var token Token
	if err := parseResponse(status, data, &token); err != nil {
		return nil, fmt.Errorf("get token: %w", err)
	}
	return &token, nil
}
