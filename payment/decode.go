package payment

import (
	"encoding/json"
	"fmt"
	"strings"

	"paykit/jsonval"
)

// DecodeError reports a malformed payment or capability payload: a missing or
// mistyped required field, or a cross-field integrity violation. Unknown type
// tags are not decode errors; they degrade to the Other variant.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode: %s: %v", e.Reason, e.Err)
	}
	return "decode: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErrorf(format string, args ...any) *DecodeError {
	return &DecodeError{Reason: fmt.Sprintf(format, args...)}
}

// Reserved wire-envelope keys excluded from the parameter bag captured by the
// Other variants.
var reservedEnvelopeKeys = map[string]struct{}{
	"type":     {},
	"object":   {},
	"id":       {},
	"flow":     {},
	"currency": {},
	"amount":   {},
	"livemode": {},
	"location": {},
}

// prefixFamilies is the ordered dispatch table for compound type tags. Order
// is fixed and load-bearing: a tag is claimed by the first family whose prefix
// matches, and only then does its suffix decoder run.
var prefixFamilies = []struct {
	prefix string
	decode func(suffix string, raw map[string]json.RawMessage) (Method, error)
}{
	{PrefixInternetBanking, decodeInternetBanking},
	{PrefixBillPayment, decodeBillPayment},
	{PrefixBarcode, decodeBarcode},
	{PrefixInstallment, decodeInstallment},
	{PrefixPoints, decodePoints},
	{PrefixMobileBanking, decodeMobileBanking},
}

// atomicMethods maps exact tags of parameterless methods to their values.
var atomicMethods = map[SourceType]Method{
	SourceAlipay:           Alipay{},
	SourceAlipayCN:         AlipayCN{},
	SourceAlipayHK:         AlipayHK{},
	SourceDana:             Dana{},
	SourceGCash:            GCash{},
	SourceKakaoPay:         KakaoPay{},
	SourceTouchNGo:         TouchNGo{},
	SourcePromptPay:        PromptPay{},
	SourcePayNow:           PayNow{},
	SourceWeChat:           WeChat{},
	SourceTrueMoneyJumpApp: TrueMoneyJumpApp{},
	SourceRabbitLinePay:    RabbitLinePay{},
	SourceBoost:            Boost{},
	SourceShopeePay:        ShopeePay{},
	SourceShopeePayJumpApp: ShopeePayJumpApp{},
	SourceMaybankQRPay:     MaybankQRPay{},
	SourceDuitNowQR:        DuitNowQR{},
	SourceGrabPay:          GrabPay{},
	SourcePayPay:           PayPay{},
}

// DecodeMethod decodes a payment method from a JSON payload. Dispatch order:
// exact atomic tags, exact structured tags (atome, econtext, truemoney, fpx,
// duitnow_obw), then the compound prefix families in their fixed order, and
// finally the Other fallback capturing all non-reserved fields. Decoding fails
// only when the type field is absent or not a string, or when a claimed
// family's sub-shape is malformed.
func DecodeMethod(data []byte) (Method, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Reason: "payment payload is not a JSON object", Err: err}
	}
	return decodeMethodFields(raw)
}

func decodeMethodFields(raw map[string]json.RawMessage) (Method, error) {
	typeRaw, ok := raw["type"]
	if !ok {
		return nil, decodeErrorf("payment payload has no type field")
	}
	var tag string
	if err := json.Unmarshal(typeRaw, &tag); err != nil {
		return nil, &DecodeError{Reason: "payment type is not a string", Err: err}
	}

	if m, ok := atomicMethods[SourceType(tag)]; ok {
		return m, nil
	}

	switch SourceType(tag) {
	case SourceAtome:
		return decodeAtome(raw)
	case SourceEContext:
		return decodeEContext(raw)
	case SourceTrueMoney:
		return decodeTrueMoney(raw)
	case SourceFPX:
		return decodeFPX(raw)
	case SourceDuitNowOBW:
		return decodeDuitNowOBW(raw)
	}

	for _, family := range prefixFamilies {
		if strings.HasPrefix(tag, family.prefix) && len(tag) > len(family.prefix) {
			return family.decode(tag[len(family.prefix):], raw)
		}
	}

	params, err := captureParams(raw)
	if err != nil {
		return nil, err
	}
	return Other{Type: tag, Params: params}, nil
}

// captureParams collects every non-reserved payload field into an opaque bag.
func captureParams(raw map[string]json.RawMessage) (jsonval.Object, error) {
	params := jsonval.Object{}
	for key, fragment := range raw {
		if _, reserved := reservedEnvelopeKeys[key]; reserved {
			continue
		}
		v, err := jsonval.Decode(fragment)
		if err != nil {
			return nil, &DecodeError{Reason: fmt.Sprintf("parameter %q", key), Err: err}
		}
		params[key] = v
	}
	return params, nil
}

func decodeInternetBanking(suffix string, _ map[string]json.RawMessage) (Method, error) {
	return InternetBanking{Bank: InternetBankingBank(suffix)}, nil
}

func decodeMobileBanking(suffix string, _ map[string]json.RawMessage) (Method, error) {
	if suffix == "ocbc" {
		return OCBCDigital{}, nil
	}
	return MobileBanking{Bank: MobileBankingBank(suffix)}, nil
}

func decodeBillPayment(suffix string, _ map[string]json.RawMessage) (Method, error) {
	return BillPayment{Service: BillPaymentService(suffix)}, nil
}

func decodePoints(suffix string, _ map[string]json.RawMessage) (Method, error) {
	return Points{Program: PointsProgram(suffix)}, nil
}

func decodeInstallment(suffix string, raw map[string]json.RawMessage) (Method, error) {
	termsRaw, ok := raw["installment_term"]
	if !ok {
		return nil, decodeErrorf("installment payload has no installment_term field")
	}
	var terms int
	if err := json.Unmarshal(termsRaw, &terms); err != nil {
		return nil, &DecodeError{Reason: "installment_term is not an integer", Err: err}
	}
	return Installment{Brand: InstallmentBrand(suffix), NumberOfTerms: terms}, nil
}

func decodeBarcode(suffix string, raw map[string]json.RawMessage) (Method, error) {
	if suffix != "alipay" {
		params, err := captureParams(raw)
		if err != nil {
			return nil, err
		}
		return BarcodeOther{Name: suffix, Params: params}, nil
	}

	barcodeRaw, ok := raw["barcode"]
	if !ok {
		return nil, decodeErrorf("alipay barcode payload has no barcode field")
	}
	var m BarcodeAlipay
	if err := json.Unmarshal(barcodeRaw, &m.Barcode); err != nil {
		return nil, &DecodeError{Reason: "barcode is not a string", Err: err}
	}

	storeID, hasStoreID, err := optionalString(raw, "store_id")
	if err != nil {
		return nil, err
	}
	storeName, hasStoreName, err := optionalString(raw, "store_name")
	if err != nil {
		return nil, err
	}
	switch {
	case hasStoreID && hasStoreName:
		m.Store = &BarcodeStore{ID: storeID, Name: storeName}
	case hasStoreID:
		return nil, decodeErrorf("alipay barcode store id is present but store name is missing")
	case hasStoreName:
		return nil, decodeErrorf("alipay barcode store name is present but store id is missing")
	}

	m.TerminalID, _, err = optionalString(raw, "terminal_id")
	if err != nil {
		return nil, err
	}
	return m, nil
}

func decodeAtome(raw map[string]json.RawMessage) (Method, error) {
	var m Atome
	if err := unmarshalFields(raw, map[string]any{
		"phone_number": &m.PhoneNumber,
		"shipping":     &m.Shipping,
		"items":        &m.Items,
	}); err != nil {
		return nil, err
	}
	var err error
	if m.Name, _, err = optionalString(raw, "name"); err != nil {
		return nil, err
	}
	if m.Email, _, err = optionalString(raw, "email"); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeEContext(raw map[string]json.RawMessage) (Method, error) {
	var m EContext
	if err := unmarshalFields(raw, map[string]any{
		"name":         &m.Name,
		"email":        &m.Email,
		"phone_number": &m.PhoneNumber,
	}); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeTrueMoney(raw map[string]json.RawMessage) (Method, error) {
	var m TrueMoney
	if err := unmarshalFields(raw, map[string]any{"phone_number": &m.PhoneNumber}); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeFPX(raw map[string]json.RawMessage) (Method, error) {
	var m FPX
	if err := unmarshalFields(raw, map[string]any{"bank": &m.Bank}); err != nil {
		return nil, err
	}
	var err error
	if m.Email, _, err = optionalString(raw, "email"); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeDuitNowOBW(raw map[string]json.RawMessage) (Method, error) {
	var bank string
	if err := unmarshalFields(raw, map[string]any{"bank": &bank}); err != nil {
		return nil, err
	}
	return DuitNowOBW{Bank: DuitNowOBWBank(bank)}, nil
}

// unmarshalFields decodes required fields; a missing or mistyped field is a
// DecodeError naming it.
func unmarshalFields(raw map[string]json.RawMessage, fields map[string]any) error {
	for key, dst := range fields {
		fragment, ok := raw[key]
		if !ok {
			return decodeErrorf("payload has no %s field", key)
		}
		if err := json.Unmarshal(fragment, dst); err != nil {
			return &DecodeError{Reason: fmt.Sprintf("field %s", key), Err: err}
		}
	}
	return nil
}

func optionalString(raw map[string]json.RawMessage, key string) (string, bool, error) {
	fragment, ok := raw[key]
	if !ok {
		return "", false, nil
	}
	if string(fragment) == "null" {
		return "", false, nil
	}
	var s string
	if err := json.Unmarshal(fragment, &s); err != nil {
		return "", false, &DecodeError{Reason: fmt.Sprintf("field %s is not a string", key), Err: err}
	}
	return s, true, nil
}
