package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paykit/capability"
	"paykit/payment"
)

func keys(options []Option) []string {
	out := make([]string, len(options))
	for i, o := range options {
		out[i] = o.Key
	}
	return out
}

func TestFromSourceTypes_Grouping(t *testing.T) {
	got := FromSourceTypes([]payment.SourceType{
		payment.SourceInstallmentBAY,
		payment.SourceInstallmentKTC,
		payment.SourceInternetBankingBBL,
		payment.SourceMobileBankingKBank,
		payment.SourceMobileBankingSCB,
		payment.SourceEContext,
		payment.SourceBarcodeAlipay,
		payment.SourceAlipay,
	}, false)

	assert.Equal(t, []string{
		"mobile_banking",
		"internet_banking",
		"alipay",
		"installments",
		"econtext_conbini",
		"econtext_net_banking",
		"econtext_pay_easy",
	}, keys(got))
}

func TestFromSourceTypes_OCBCStaysSeparate(t *testing.T) {
	got := FromSourceTypes([]payment.SourceType{
		payment.SourceMobileBankingOCBC,
		payment.SourceMobileBankingOCBCPAO,
	}, false)

	assert.Equal(t, []string{"mobile_banking", "mobile_banking_ocbc"}, keys(got))
}

func TestFromSourceTypes_JumpAppDedup(t *testing.T) {
	got := FromSourceTypes([]payment.SourceType{
		payment.SourceTrueMoney,
		payment.SourceTrueMoneyJumpApp,
		payment.SourceShopeePay,
		payment.SourceShopeePayJumpApp,
	}, false)
	assert.Equal(t, []string{"truemoney_jumpapp", "shopeepay_jumpapp"}, keys(got))

	got = FromSourceTypes([]payment.SourceType{payment.SourceTrueMoney, payment.SourceShopeePay}, false)
	assert.Equal(t, []string{"truemoney", "shopeepay"}, keys(got),
		"plain wallets survive when no app-switch sibling is present")
}

func TestFromSourceTypes_CuratedOrder(t *testing.T) {
	got := FromSourceTypes([]payment.SourceType{
		payment.SourceAlipayHK,
		payment.SourceInstallmentBAY,
		payment.SourceBoost,
		payment.SourceAtome,
		payment.SourcePromptPay,
	}, true)

	assert.Equal(t, []string{
		"credit_card",
		"promptpay",
		"installments",
		"alipay_hk",
		"atome",
		"boost",
	}, keys(got), "curated head first, then alphabetical by title")
}

func TestFromSourceTypes_UnknownTypesOmitted(t *testing.T) {
	got := FromSourceTypes([]payment.SourceType{
		payment.SourceType("future_wallet_x"),
		payment.SourcePayNow,
	}, false)
	assert.Equal(t, []string{"paynow"}, keys(got))
}

func TestFromCapability(t *testing.T) {
	doc := `{
		"object": "capability",
		"limits": {"charge_amount": {"min": 2000, "max": 100000}, "transfer_amount": {"min": 1, "max": 2}},
		"payment_backends": [
			{"card": {"type": "card", "currencies": ["THB"], "brands": ["Visa"]}},
			{"promptpay": {"type": "promptpay", "currencies": ["THB"]}},
			{"installment_bay": {"type": "installment_bay", "currencies": ["THB"], "allowed_installment_terms": [3, 4, 6]}},
			{"truemoney": {"type": "truemoney", "currencies": ["THB"]}},
			{"truemoney_jumpapp": {"type": "truemoney_jumpapp", "currencies": ["THB"]}}
		]
	}`
	c, err := capability.Decode([]byte(doc))
	require.NoError(t, err)

	got := FromCapability(c)
	assert.Equal(t, []string{
		"credit_card",
		"promptpay",
		"truemoney_jumpapp",
		"installments",
	}, keys(got))

	assert.Nil(t, FromCapability(nil))
}

func TestOptionAccessoryIcon(t *testing.T) {
	form, ok := sourceOption(payment.SourceTrueMoney)
	require.True(t, ok)
	assert.True(t, form.RequiresAdditionalDetails)
	assert.Equal(t, "Next", form.AccessoryIcon())

	redirect, ok := sourceOption(payment.SourcePayNow)
	require.True(t, ok)
	assert.False(t, redirect.RequiresAdditionalDetails)
	assert.Equal(t, "Redirect", redirect.AccessoryIcon())
}
