package payment

import "paykit/jsonval"

// Method is one concrete payment method selected by the customer or decoded
// from a gateway payload. Implementations are immutable values; the canonical
// wire tag is total and pure.
type Method interface {
	SourceType() SourceType
}

// Atomic methods carrying no parameters beyond their type tag.
type (
	// Alipay is the online Alipay payment method.
	Alipay struct{}
	// AlipayCN is the Alipay China wallet payment method.
	AlipayCN struct{}
	// AlipayHK is the Alipay Hong Kong wallet payment method.
	AlipayHK struct{}
	// Dana is the Alipay+ Dana wallet payment method.
	Dana struct{}
	// GCash is the Alipay+ GCash wallet payment method.
	GCash struct{}
	// KakaoPay is the Alipay+ KakaoPay wallet payment method.
	KakaoPay struct{}
	// TouchNGo is the Alipay+ Touch 'n Go wallet payment method.
	TouchNGo struct{}
	// PromptPay is the Thai PromptPay QR payment method.
	PromptPay struct{}
	// PayNow is the Singaporean PayNow QR payment method.
	PayNow struct{}
	// WeChat is the WeChat Pay payment method.
	WeChat struct{}
	// TrueMoneyJumpApp is the TrueMoney app-switch payment method.
	TrueMoneyJumpApp struct{}
	// RabbitLinePay is the Rabbit LINE Pay payment method.
	RabbitLinePay struct{}
	// OCBCDigital is the OCBC Digital mobile banking payment method.
	OCBCDigital struct{}
	// Boost is the Malaysian Boost wallet payment method.
	Boost struct{}
	// ShopeePay is the ShopeePay wallet payment method.
	ShopeePay struct{}
	// ShopeePayJumpApp is the ShopeePay app-switch payment method.
	ShopeePayJumpApp struct{}
	// MaybankQRPay is the Maybank QRPay payment method.
	MaybankQRPay struct{}
	// DuitNowQR is the Malaysian DuitNow QR payment method.
	DuitNowQR struct{}
	// GrabPay is the GrabPay wallet payment method.
	GrabPay struct{}
	// PayPay is the Japanese PayPay payment method.
	PayPay struct{}
)

func (Alipay) SourceType() SourceType           { return SourceAlipay }
func (AlipayCN) SourceType() SourceType         { return SourceAlipayCN }
func (AlipayHK) SourceType() SourceType         { return SourceAlipayHK }
func (Dana) SourceType() SourceType             { return SourceDana }
func (GCash) SourceType() SourceType            { return SourceGCash }
func (KakaoPay) SourceType() SourceType         { return SourceKakaoPay }
func (TouchNGo) SourceType() SourceType         { return SourceTouchNGo }
func (PromptPay) SourceType() SourceType        { return SourcePromptPay }
func (PayNow) SourceType() SourceType           { return SourcePayNow }
func (WeChat) SourceType() SourceType           { return SourceWeChat }
func (TrueMoneyJumpApp) SourceType() SourceType { return SourceTrueMoneyJumpApp }
func (RabbitLinePay) SourceType() SourceType    { return SourceRabbitLinePay }
func (OCBCDigital) SourceType() SourceType      { return SourceMobileBankingOCBC }
func (Boost) SourceType() SourceType            { return SourceBoost }
func (ShopeePay) SourceType() SourceType        { return SourceShopeePay }
func (ShopeePayJumpApp) SourceType() SourceType { return SourceShopeePayJumpApp }
func (MaybankQRPay) SourceType() SourceType     { return SourceMaybankQRPay }
func (DuitNowQR) SourceType() SourceType        { return SourceDuitNowQR }
func (GrabPay) SourceType() SourceType          { return SourceGrabPay }
func (PayPay) SourceType() SourceType           { return SourcePayPay }

// Other is the forward-compatible escape hatch: it captures any unrecognized
// type tag together with every non-reserved field of the payload.
type Other struct {
	Type   string
	Params jsonval.Object
}

func (o Other) SourceType() SourceType { return SourceType(o.Type) }

// Equal compares two methods structurally. The Other variants compare by tag
// and parameter key set only: forward-compatible payloads are opaque blobs
// whose internal values the client cannot meaningfully compare.
func Equal(a, b Method) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch av := a.(type) {
	case Other:
		bv, ok := b.(Other)
		return ok && av.Type == bv.Type && av.Params.SameKeys(bv.Params)
	case BarcodeOther:
		bv, ok := b.(BarcodeOther)
		return ok && av.Name == bv.Name && av.Params.SameKeys(bv.Params)
	case BarcodeAlipay:
		bv, ok := b.(BarcodeAlipay)
		return ok && av.equal(bv)
	case Atome:
		bv, ok := b.(Atome)
		return ok && av.equal(bv)
	default:
		// Remaining variants are flat comparable structs.
		return a == b
	}
}
