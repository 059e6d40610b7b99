package payment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMethod_AtomicTags(t *testing.T) {
	tests := []struct {
		tag  string
		want Method
	}{
		{"alipay", Alipay{}},
		{"alipay_cn", AlipayCN{}},
		{"alipay_hk", AlipayHK{}},
		{"dana", Dana{}},
		{"gcash", GCash{}},
		{"kakaopay", KakaoPay{}},
		{"touch_n_go", TouchNGo{}},
		{"promptpay", PromptPay{}},
		{"paynow", PayNow{}},
		{"wechat_pay", WeChat{}},
		{"truemoney_jumpapp", TrueMoneyJumpApp{}},
		{"rabbit_linepay", RabbitLinePay{}},
		{"boost", Boost{}},
		{"shopeepay", ShopeePay{}},
		{"shopeepay_jumpapp", ShopeePayJumpApp{}},
		{"maybank_qr", MaybankQRPay{}},
		{"duitnow_qr", DuitNowQR{}},
		{"grabpay", GrabPay{}},
		{"paypay", PayPay{}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			m, err := DecodeMethod([]byte(`{"type":"` + tt.tag + `"}`))
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
			assert.EqualValues(t, tt.tag, m.SourceType())
		})
	}
}

func TestDecodeMethod_CompoundPrefixes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Method
	}{
		{
			"installment bay",
			`{"type":"installment_bay","installment_term":6}`,
			Installment{Brand: InstallmentBAY, NumberOfTerms: 6},
		},
		{
			"installment unknown brand",
			`{"type":"installment_newbank","installment_term":4}`,
			Installment{Brand: "newbank", NumberOfTerms: 4},
		},
		{
			"internet banking bay",
			`{"type":"internet_banking_bay"}`,
			InternetBanking{Bank: InternetBankingBAY},
		},
		{
			"internet banking unknown bank",
			`{"type":"internet_banking_xyz"}`,
			InternetBanking{Bank: "xyz"},
		},
		{
			"mobile banking kbank",
			`{"type":"mobile_banking_kbank"}`,
			MobileBanking{Bank: MobileBankingKBank},
		},
		{
			"mobile banking ocbc is the digital method",
			`{"type":"mobile_banking_ocbc"}`,
			OCBCDigital{},
		},
		{
			"mobile banking ocbc pao keeps its suffix",
			`{"type":"mobile_banking_ocbc_pao"}`,
			MobileBanking{Bank: "ocbc_pao"},
		},
		{
			"bill payment tesco lotus",
			`{"type":"bill_payment_tesco_lotus"}`,
			BillPayment{Service: BillPaymentTescoLotus},
		},
		{
			"points citi",
			`{"type":"points_citi"}`,
			Points{Program: PointsCiti},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeMethod([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, m)
		})
	}
}

func TestDecodeMethod_StructuredTags(t *testing.T) {
	m, err := DecodeMethod([]byte(`{"type":"econtext","name":"John","email":"john@example.com","phone_number":"0123456789"}`))
	require.NoError(t, err)
	assert.Equal(t, EContext{Name: "John", Email: "john@example.com", PhoneNumber: "0123456789"}, m)

	m, err = DecodeMethod([]byte(`{"type":"truemoney","phone_number":"0123456789"}`))
	require.NoError(t, err)
	assert.Equal(t, TrueMoney{PhoneNumber: "0123456789"}, m)

	m, err = DecodeMethod([]byte(`{"type":"fpx","bank":"uob","email":"a@b.com"}`))
	require.NoError(t, err)
	assert.Equal(t, FPX{Bank: "uob", Email: "a@b.com"}, m)

	m, err = DecodeMethod([]byte(`{"type":"fpx","bank":"uob"}`))
	require.NoError(t, err)
	assert.Equal(t, FPX{Bank: "uob"}, m)

	m, err = DecodeMethod([]byte(`{"type":"duitnow_obw","bank":"affin"}`))
	require.NoError(t, err)
	assert.Equal(t, DuitNowOBW{Bank: DuitNowOBWBankAffin}, m)
}

func TestDecodeMethod_Atome(t *testing.T) {
	in := `{
		"type": "atome",
		"phone_number": "0123456789",
		"name": "John",
		"email": "john@example.com",
		"shipping": {"country":"TH","city":"Bangkok","postal_code":"10330","state":"Bangkok","street1":"1 Main Rd","street2":""},
		"items": [{"sku":"sku-1","name":"Widget","quantity":2,"amount":20000}]
	}`
	m, err := DecodeMethod([]byte(in))
	require.NoError(t, err)

	atome, ok := m.(Atome)
	require.True(t, ok)
	assert.Equal(t, "0123456789", atome.PhoneNumber)
	assert.Equal(t, "Bangkok", atome.Shipping.City)
	require.Len(t, atome.Items, 1)
	assert.EqualValues(t, 20000, atome.Items[0].Amount)
}

func TestDecodeMethod_ForwardCompatible(t *testing.T) {
	in := `{
		"type": "future_wallet_x",
		"object": "source",
		"id": "src_test_1",
		"flow": "redirect",
		"currency": "thb",
		"amount": 10000,
		"livemode": false,
		"location": "/sources/src_test_1",
		"wallet_id": "w-1",
		"priority": 3
	}`
	m, err := DecodeMethod([]byte(in))
	require.NoError(t, err)

	other, ok := m.(Other)
	require.True(t, ok)
	assert.Equal(t, "future_wallet_x", other.Type)
	assert.ElementsMatch(t, []string{"wallet_id", "priority"}, other.Params.Keys(),
		"reserved envelope keys must not leak into the parameter bag")

	priority, isInt := other.Params["priority"].IntValue()
	require.True(t, isInt)
	assert.EqualValues(t, 3, priority)
}

// Near-miss strings must not be claimed by a family: a compound prefix only
// matches with a non-empty suffix after its underscore.
func TestDecodeMethod_PrefixPinning(t *testing.T) {
	tests := []struct {
		tag string
	}{
		{"internet_banking"},
		{"internet_banking_"},
		{"mobile_banking"},
		{"installment"},
		{"installment_"},
		{"bill_payment"},
		{"barcode"},
		{"points"},
		{"truemoneyx"},
		{"econtextx"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			m, err := DecodeMethod([]byte(`{"type":"` + tt.tag + `"}`))
			require.NoError(t, err)
			other, ok := m.(Other)
			require.True(t, ok, "near miss %q must decode as Other, got %T", tt.tag, m)
			assert.Equal(t, tt.tag, other.Type)
		})
	}
}

func TestDecodeMethod_Barcode(t *testing.T) {
	m, err := DecodeMethod([]byte(`{"type":"barcode_alipay","barcode":"1234567890","store_id":"1","store_name":"Main","terminal_id":"t01"}`))
	require.NoError(t, err)
	assert.Equal(t, BarcodeAlipay{
		Barcode:    "1234567890",
		Store:      &BarcodeStore{ID: "1", Name: "Main"},
		TerminalID: "t01",
	}, m)

	m, err = DecodeMethod([]byte(`{"type":"barcode_alipay","barcode":"1234567890"}`))
	require.NoError(t, err)
	assert.Equal(t, BarcodeAlipay{Barcode: "1234567890"}, m)

	m, err = DecodeMethod([]byte(`{"type":"barcode_wechat","barcode":"9876"}`))
	require.NoError(t, err)
	barcodeOther, ok := m.(BarcodeOther)
	require.True(t, ok)
	assert.Equal(t, "wechat", barcodeOther.Name)
	assert.Contains(t, barcodeOther.Params, "barcode")
}

func TestDecodeMethod_BarcodeStoreMismatch(t *testing.T) {
	var decodeErr *DecodeError

	_, err := DecodeMethod([]byte(`{"type":"barcode_alipay","barcode":"1","store_id":"1"}`))
	require.Error(t, err)
	require.True(t, errors.As(err, &decodeErr))

	_, err = DecodeMethod([]byte(`{"type":"barcode_alipay","barcode":"1","store_name":"Main"}`))
	require.Error(t, err)
	require.True(t, errors.As(err, &decodeErr))
}

func TestDecodeMethod_Failures(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"missing type", `{"amount": 1000}`},
		{"non-string type", `{"type": 42}`},
		{"installment without term", `{"type":"installment_bay"}`},
		{"installment with non-integer term", `{"type":"installment_bay","installment_term":"six"}`},
		{"barcode alipay without barcode", `{"type":"barcode_alipay"}`},
		{"not an object", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeMethod([]byte(tt.in))
			require.Error(t, err)
			var decodeErr *DecodeError
			assert.True(t, errors.As(err, &decodeErr), "want *DecodeError, got %T", err)
		})
	}
}
