package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"paykit/capability"
	"paykit/payment"
)

// topList fixes the head of the presentation order. Entries present in the
// catalog appear first, in this order; everything else follows alphabetically.
var topList = []string{
	creditCard.Key,
	string(payment.SourcePayNow),
	string(payment.SourcePromptPay),
	string(payment.SourceTrueMoney),
	string(payment.SourceTrueMoneyJumpApp),
	mobileBanking.Key,
	internetBanking.Key,
	string(payment.SourceAlipay),
	installments.Key,
	string(payment.SourceMobileBankingOCBC),
	string(payment.SourceRabbitLinePay),
	string(payment.SourceShopeePay),
	string(payment.SourceShopeePayJumpApp),
	string(payment.SourceAlipayCN),
	string(payment.SourceAlipayHK),
}

// optionsFor maps one wire type to its catalog entries. Bank-specific
// installment, internet banking, and mobile banking types collapse into their
// group entry; econtext fans out into its three sub-flows; barcode types and
// types the chooser has no rendering for yield nothing.
func optionsFor(t payment.SourceType) []Option {
	switch {
	case t.IsInstallment():
		return []Option{installments}
	case t.IsInternetBanking():
		return []Option{internetBanking}
	case t.IsMobileBanking() && t != payment.SourceMobileBankingOCBC:
		return []Option{mobileBanking}
	case t == payment.SourceEContext:
		return []Option{econtextConbini, econtextNetBanking, econtextPayEasy}
	}
	if o, ok := sourceOption(t); ok {
		return []Option{o}
	}
	return nil
}

// FromSourceTypes builds the ordered catalog for an explicit allow-list.
// withCreditCard additionally includes the tokenized card entry.
func FromSourceTypes(types []payment.SourceType, withCreditCard bool) []Option {
	var options []Option
	if withCreditCard {
		options = append(options, creditCard)
	}
	for _, t := range types {
		for _, o := range optionsFor(t) {
			if !containsKey(options, o.Key) {
				options = append(options, o)
			}
		}
	}
	return sorted(dedupJumpApp(options))
}

// FromCapability builds the ordered catalog for a decoded capability
// document. The card entry appears when the document carries a card backend.
func FromCapability(c *capability.Capability) []Option {
	if c == nil {
		return nil
	}
	types := make([]payment.SourceType, 0, len(c.Backends))
	withCreditCard := false
	for _, backend := range c.Backends {
		if backend.Key == capability.KeyCard {
			withCreditCard = true
			continue
		}
		types = append(types, payment.SourceType(backend.Key))
	}
	return FromSourceTypes(types, withCreditCard)
}

// dedupJumpApp drops a wallet entry when its app-switch sibling is present.
// The pairs are enumerated, not inferred from naming.
var jumpAppPairs = [][2]payment.SourceType{
	{payment.SourceTrueMoney, payment.SourceTrueMoneyJumpApp},
	{payment.SourceShopeePay, payment.SourceShopeePayJumpApp},
}

func dedupJumpApp(options []Option) []Option {
	for _, pair := range jumpAppPairs {
		wallet, jumpApp := string(pair[0]), string(pair[1])
		if containsKey(options, wallet) && containsKey(options, jumpApp) {
			options = removeKey(options, wallet)
		}
	}
	return options
}

// sorted orders the catalog: alphabetical by display name first, then the
// curated head is pulled to the front in its fixed order.
func sorted(options []Option) []Option {
	cl := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(options, func(i, j int) bool {
		return cl.CompareString(options[i].Title, options[j].Title) < 0
	})

	head := make([]Option, 0, len(options))
	for _, key := range topList {
		for _, o := range options {
			if o.Key == key {
				head = append(head, o)
				options = removeKey(options, key)
				break
			}
		}
	}
	return append(head, options...)
}

func containsKey(options []Option, key string) bool {
	for _, o := range options {
		if o.Key == key {
			return true
		}
	}
	return false
}

func removeKey(options []Option, key string) []Option {
	kept := options[:0]
	for _, o := range options {
		if o.Key != key {
			kept = append(kept, o)
		}
	}
	return kept
}
