// Package capability models the gateway's declared support matrix: which
// payment methods a merchant account can charge, in which currencies, and
// within which amount limits.
package capability

import (
	"encoding/json"
	"fmt"
	"strings"

	"paykit/jsonval"
	"paykit/payment"
)

// objectDiscriminator is the fixed object field value of a capability
// document.
const objectDiscriminator = "capability"

// Capability is an immutable snapshot of one decoded capability document.
// Backends preserve the document's order; lookups by key are O(1).
type Capability struct {
	Location       string
	SupportedBanks map[string]struct{}
	ChargeLimit    Limit
	TransferLimit  Limit
	Backends       []Backend

	index map[BackendKey]int
}

// Lookup returns the backend stored under the key, if any.
func (c *Capability) Lookup(key BackendKey) (Backend, bool) {
	i, ok := c.index[key]
	if !ok {
		return Backend{}, false
	}
	return c.Backends[i], true
}

// BackendFor returns the backend matching a selected payment method.
func (c *Capability) BackendFor(m payment.Method) (Backend, bool) {
	return c.Lookup(KeyForMethod(m))
}

// CardBackend returns the tokenized card backend, if the document has one.
func (c *Capability) CardBackend() (Backend, bool) {
	return c.Lookup(KeyCard)
}

// SupportsBank reports whether the document lists the bank.
func (c *Capability) SupportsBank(bank string) bool {
	_, ok := c.SupportedBanks[bank]
	return ok
}

// Decode decodes a capability document. The document's object field must
// carry the capability discriminator, and every backend's nested type must
// match the key it is stored under.
func Decode(data []byte) (*Capability, error) {
	var raw struct {
		Object         string            `json:"object"`
		Location       string            `json:"location"`
		SupportedBanks []string          `json:"banks"`
		Limits         map[string]Limit  `json:"limits"`
		Backends       []json.RawMessage `json:"payment_backends"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &payment.DecodeError{Reason: "capability payload is not a JSON object", Err: err}
	}
	if raw.Object != objectDiscriminator {
		return nil, &payment.DecodeError{
			Reason: fmt.Sprintf("object is %q, want %q", raw.Object, objectDiscriminator),
		}
	}

	c := &Capability{
		Location:       raw.Location,
		SupportedBanks: make(map[string]struct{}, len(raw.SupportedBanks)),
		ChargeLimit:    raw.Limits["charge_amount"],
		TransferLimit:  raw.Limits["transfer_amount"],
		Backends:       make([]Backend, 0, len(raw.Backends)),
		index:          make(map[BackendKey]int, len(raw.Backends)),
	}
	for _, bank := range raw.SupportedBanks {
		c.SupportedBanks[bank] = struct{}{}
	}

	for i, fragment := range raw.Backends {
		backend, err := decodeBackend(fragment)
		if err != nil {
			return nil, err
		}
		if _, dup := c.index[backend.Key]; dup {
			return nil, &payment.DecodeError{
				Reason: fmt.Sprintf("duplicate backend %q at index %d", backend.Key, i),
			}
		}
		c.index[backend.Key] = len(c.Backends)
		c.Backends = append(c.Backends, backend)
	}
	return c, nil
}

// Fixed sub-schema fields shared by every backend; everything else is family
// configuration.
var backendEnvelopeKeys = map[string]struct{}{
	"type":       {},
	"currencies": {},
	"amount":     {},
}

// decodeBackend decodes one payment_backends element: a single-key object
// whose key is the method's wire type and whose value carries the shared
// sub-schema plus family-specific fields.
func decodeBackend(data []byte) (Backend, error) {
	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(data, &keyed); err != nil {
		return Backend{}, &payment.DecodeError{Reason: "backend entry is not a JSON object", Err: err}
	}
	if len(keyed) != 1 {
		return Backend{}, &payment.DecodeError{
			Reason: fmt.Sprintf("backend entry has %d keys, want exactly 1", len(keyed)),
		}
	}

	var key string
	var body json.RawMessage
	for k, v := range keyed {
		key, body = k, v
	}

	var sub map[string]json.RawMessage
	if err := json.Unmarshal(body, &sub); err != nil {
		return Backend{}, &payment.DecodeError{Reason: fmt.Sprintf("backend %q", key), Err: err}
	}

	var shared struct {
		Type       string   `json:"type"`
		Currencies []string `json:"currencies"`
		Amount     *Limit   `json:"amount"`
	}
	if err := json.Unmarshal(body, &shared); err != nil {
		return Backend{}, &payment.DecodeError{Reason: fmt.Sprintf("backend %q", key), Err: err}
	}
	if shared.Type != key {
		return Backend{}, &payment.DecodeError{
			Reason: fmt.Sprintf("backend type mismatch: entry %q declares type %q", key, shared.Type),
		}
	}

	desc, err := decodeDescriptor(key, sub)
	if err != nil {
		return Backend{}, err
	}
	return Backend{
		Key:        BackendKey(key),
		Payment:    desc,
		Currencies: NewCurrencySet(shared.Currencies...),
		Limit:      shared.Amount,
	}, nil
}

func decodeDescriptor(key string, sub map[string]json.RawMessage) (Descriptor, error) {
	switch {
	case key == string(KeyCard):
		var brands []CardBrand
		if fragment, ok := sub["brands"]; ok {
			if err := json.Unmarshal(fragment, &brands); err != nil {
				return nil, &payment.DecodeError{Reason: "card backend brands", Err: err}
			}
		}
		return CardDescriptor{Brands: brands}, nil

	case key == string(payment.SourceAlipay):
		return AlipayDescriptor{}, nil

	case strings.HasPrefix(key, payment.PrefixInstallment):
		var terms []int
		if fragment, ok := sub["allowed_installment_terms"]; ok {
			if err := json.Unmarshal(fragment, &terms); err != nil {
				return nil, &payment.DecodeError{
					Reason: fmt.Sprintf("backend %q allowed_installment_terms", key),
					Err:    err,
				}
			}
		}
		brand := payment.InstallmentBrand(key[len(payment.PrefixInstallment):])
		return InstallmentDescriptor{Brand: brand, Terms: terms}, nil

	case strings.HasPrefix(key, payment.PrefixInternetBanking):
		bank := payment.InternetBankingBank(key[len(payment.PrefixInternetBanking):])
		return InternetBankingDescriptor{Bank: bank}, nil

	default:
		config := jsonval.Object{}
		for k, fragment := range sub {
			if _, fixed := backendEnvelopeKeys[k]; fixed {
				continue
			}
			v, err := jsonval.Decode(fragment)
			if err != nil {
				return nil, &payment.DecodeError{
					Reason: fmt.Sprintf("backend %q field %q", key, k),
					Err:    err,
				}
			}
			config[k] = v
		}
		return UnknownDescriptor{Type: key, Config: config}, nil
	}
}
