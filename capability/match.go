package capability

import (
	"paykit/currency"
	"paykit/payment"
)

// Request is one candidate charge to check against a capability.
type Request struct {
	Method payment.Method
	// Amount is in currency subunits.
	Amount   int64
	Currency currency.Currency
}

// Admissible reports whether the capability allows the request. The method
// must have a backend entry, the amount must fall within the backend's limit
// override or otherwise the global charge limit, the currency must be in the
// backend's supported set, and an installment request's term count must be
// one the backend offers.
func Admissible(c *Capability, req Request) bool {
	if c == nil || req.Method == nil {
		return false
	}
	backend, ok := c.BackendFor(req.Method)
	if !ok {
		return false
	}

	limit := c.ChargeLimit
	if backend.Limit != nil {
		limit = *backend.Limit
	}
	if !limit.Contains(req.Amount) {
		return false
	}
	if !backend.Currencies.Contains(req.Currency) {
		return false
	}

	if installment, ok := req.Method.(payment.Installment); ok {
		desc, ok := backend.Payment.(InstallmentDescriptor)
		if !ok {
			return false
		}
		return desc.AllowsTerms(installment.NumberOfTerms)
	}
	return true
}
