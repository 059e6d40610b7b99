package capability

import (
	"strings"

	"paykit/currency"
	"paykit/jsonval"
	"paykit/payment"
)

// BackendKey identifies one backend entry inside a capability document. It is
// either KeyCard or the wire type tag of a source-based payment method.
type BackendKey string

// KeyCard is the key of the tokenized card backend.
const KeyCard BackendKey = "card"

// KeyForSource returns the backend key of a source-based payment method type.
func KeyForSource(t payment.SourceType) BackendKey {
	return BackendKey(t)
}

// KeyForMethod returns the backend key matching a selected payment method.
func KeyForMethod(m payment.Method) BackendKey {
	return KeyForSource(m.SourceType())
}

// CardBrand is a card network name as reported by the gateway, such as "Visa"
// or "MasterCard".
type CardBrand string

// Descriptor is the method-specific configuration of one backend. Variants
// mirror the families the gateway configures individually; everything else
// lands in UnknownDescriptor with its raw configuration preserved.
type Descriptor interface {
	descriptor()
}

// CardDescriptor configures the tokenized card backend.
type CardDescriptor struct {
	Brands []CardBrand
}

// InstallmentDescriptor configures one installment backend.
type InstallmentDescriptor struct {
	Brand payment.InstallmentBrand
	Terms []int
}

// AllowsTerms reports whether the given number of terms is offered.
func (d InstallmentDescriptor) AllowsTerms(n int) bool {
	for _, term := range d.Terms {
		if term == n {
			return true
		}
	}
	return false
}

// InternetBankingDescriptor configures one internet banking backend.
type InternetBankingDescriptor struct {
	Bank payment.InternetBankingBank
}

// AlipayDescriptor configures the online alipay backend.
type AlipayDescriptor struct{}

// UnknownDescriptor preserves a backend the client has no dedicated model
// for. Config holds every sub-object field beyond the fixed schema.
type UnknownDescriptor struct {
	Type   string
	Config jsonval.Object
}

func (CardDescriptor) descriptor()            {}
func (InstallmentDescriptor) descriptor()     {}
func (InternetBankingDescriptor) descriptor() {}
func (AlipayDescriptor) descriptor()          {}
func (UnknownDescriptor) descriptor()         {}

// CurrencySet is the set of currency codes a backend accepts.
type CurrencySet map[string]struct{}

// NewCurrencySet normalizes codes to upper case.
func NewCurrencySet(codes ...string) CurrencySet {
	s := make(CurrencySet, len(codes))
	for _, code := range codes {
		s[strings.ToUpper(code)] = struct{}{}
	}
	return s
}

// Contains reports whether the set includes the currency, case-insensitively.
func (s CurrencySet) Contains(c currency.Currency) bool {
	_, ok := s[strings.ToUpper(c.Code())]
	return ok
}

// Backend is one per-method entry of a capability document.
type Backend struct {
	Key        BackendKey
	Payment    Descriptor
	Currencies CurrencySet
	// Limit overrides the document's global charge limit when present.
	Limit *Limit
}
