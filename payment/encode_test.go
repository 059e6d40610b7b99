package payment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paykit/jsonval"
)

func TestEncodeMethod_Placement(t *testing.T) {
	tests := []struct {
		name string
		in   Method
		want map[string]any
	}{
		{
			"atomic tag only",
			PromptPay{},
			map[string]any{"type": "promptpay"},
		},
		{
			"installment term flattened",
			Installment{Brand: InstallmentKTC, NumberOfTerms: 5},
			map[string]any{"type": "installment_ktc", "installment_term": 5},
		},
		{
			"econtext contact fields",
			EContext{Name: "John", Email: "john@example.com", PhoneNumber: "0123456789"},
			map[string]any{
				"type":         "econtext",
				"name":         "John",
				"email":        "john@example.com",
				"phone_number": "0123456789",
			},
		},
		{
			"truemoney phone number",
			TrueMoney{PhoneNumber: "0123456789"},
			map[string]any{"type": "truemoney", "phone_number": "0123456789"},
		},
		{
			"fpx empty email omitted",
			FPX{Bank: "uob"},
			map[string]any{"type": "fpx", "bank": "uob"},
		},
		{
			"fpx email kept",
			FPX{Bank: "uob", Email: "a@b.com"},
			map[string]any{"type": "fpx", "bank": "uob", "email": "a@b.com"},
		},
		{
			"duitnow obw bank",
			DuitNowOBW{Bank: DuitNowOBWBankCIMB},
			map[string]any{"type": "duitnow_obw", "bank": "cimb"},
		},
		{
			"barcode alipay with store",
			BarcodeAlipay{Barcode: "1234", Store: &BarcodeStore{ID: "1", Name: "Main"}, TerminalID: "t01"},
			map[string]any{
				"type":        "barcode_alipay",
				"barcode":     "1234",
				"store_id":    "1",
				"store_name":  "Main",
				"terminal_id": "t01",
			},
		},
		{
			"barcode alipay without store",
			BarcodeAlipay{Barcode: "1234"},
			map[string]any{"type": "barcode_alipay", "barcode": "1234"},
		},
		{
			"atome fields lifted by the client",
			Atome{PhoneNumber: "0123456789", Items: []AtomeItem{{Name: "Widget", Quantity: 1, Amount: 1000}}},
			map[string]any{"type": "atome"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeMethod(tt.in))
		})
	}
}

func TestEncodeMethod_OtherParams(t *testing.T) {
	body := EncodeMethod(Other{
		Type: "future_wallet_x",
		Params: jsonval.Object{
			"wallet_id": jsonval.String("w-1"),
			"type":      jsonval.String("spoofed"),
		},
	})
	assert.Equal(t, "future_wallet_x", body["type"], "captured params must not override the tag")
	assert.Equal(t, jsonval.String("w-1"), body["wallet_id"])
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	methods := []Method{
		Alipay{},
		OCBCDigital{},
		TrueMoneyJumpApp{},
		Installment{Brand: InstallmentBAY, NumberOfTerms: 6},
		InternetBanking{Bank: InternetBankingBBL},
		MobileBanking{Bank: MobileBankingKTB},
		BillPayment{Service: BillPaymentTescoLotus},
		Points{Program: PointsCiti},
		EContext{Name: "John", Email: "john@example.com", PhoneNumber: "0123456789"},
		TrueMoney{PhoneNumber: "0123456789"},
		FPX{Bank: "uob", Email: "a@b.com"},
		DuitNowOBW{Bank: DuitNowOBWBankAffin},
		BarcodeAlipay{Barcode: "1234", Store: &BarcodeStore{ID: "1", Name: "Main"}},
	}

	for _, m := range methods {
		t.Run(string(m.SourceType()), func(t *testing.T) {
			data := mustMarshal(t, EncodeMethod(m))
			decoded, err := DecodeMethod(data)
			require.NoError(t, err)
			assert.True(t, Equal(m, decoded), "got %#v", decoded)
		})
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Method
		want bool
	}{
		{"same atomic", Alipay{}, Alipay{}, true},
		{"different atomic", Alipay{}, AlipayHK{}, false},
		{"nil vs method", nil, Alipay{}, false},
		{"both nil", nil, nil, true},
		{
			"other same tag and keys",
			Other{Type: "x", Params: jsonval.Object{"a": jsonval.Int(1)}},
			Other{Type: "x", Params: jsonval.Object{"a": jsonval.Int(2)}},
			true,
		},
		{
			"other different keys",
			Other{Type: "x", Params: jsonval.Object{"a": jsonval.Int(1)}},
			Other{Type: "x", Params: jsonval.Object{"b": jsonval.Int(1)}},
			false,
		},
		{
			"other different tag",
			Other{Type: "x"},
			Other{Type: "y"},
			false,
		},
		{
			"barcode alipay same store",
			BarcodeAlipay{Barcode: "1", Store: &BarcodeStore{ID: "1", Name: "Main"}},
			BarcodeAlipay{Barcode: "1", Store: &BarcodeStore{ID: "1", Name: "Main"}},
			true,
		},
		{
			"barcode alipay store vs none",
			BarcodeAlipay{Barcode: "1", Store: &BarcodeStore{ID: "1", Name: "Main"}},
			BarcodeAlipay{Barcode: "1"},
			false,
		},
		{
			"installment differs by term",
			Installment{Brand: InstallmentBAY, NumberOfTerms: 6},
			Installment{Brand: InstallmentBAY, NumberOfTerms: 9},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equal(tt.a, tt.b))
		})
	}
}
