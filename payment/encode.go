package payment

import "paykit/jsonval"

// EncodeMethod renders a method as the flat JSON object the gateway expects.
// Atomic variants carry only their type tag. Compound variants place their
// extra fields exactly where their wire contract requires: installment,
// barcode, e-context, truemoney, fpx, and duitnow_obw flatten them next to the
// tag; atome's customer and order fields are lifted onto the create-source
// envelope by the client instead. Field placement differs per family on
// purpose; it is part of the wire contract, not a convention.
func EncodeMethod(m Method) map[string]any {
	body := map[string]any{"type": string(m.SourceType())}

	switch v := m.(type) {
	case Installment:
		body["installment_term"] = v.NumberOfTerms
	case EContext:
		body["name"] = v.Name
		body["email"] = v.Email
		body["phone_number"] = v.PhoneNumber
	case TrueMoney:
		body["phone_number"] = v.PhoneNumber
	case FPX:
		body["bank"] = v.Bank
		if v.Email != "" {
			body["email"] = v.Email
		}
	case DuitNowOBW:
		body["bank"] = string(v.Bank)
	case BarcodeAlipay:
		body["barcode"] = v.Barcode
		if v.Store != nil {
			body["store_id"] = v.Store.ID
			body["store_name"] = v.Store.Name
		}
		if v.TerminalID != "" {
			body["terminal_id"] = v.TerminalID
		}
	case BarcodeOther:
		mergeParams(body, v.Params)
	case Other:
		mergeParams(body, v.Params)
	}

	return body
}

func mergeParams(body map[string]any, params jsonval.Object) {
	for key, value := range params {
		if key == "type" {
			continue
		}
		body[key] = value
	}
}
