// Package catalog turns a capability document or an explicit allow-list into
// the ordered list of selectable payment options a chooser screen presents.
package catalog

import "paykit/payment"

// Icon names shipped with the presentation layer.
const (
	accessoryNext     = "Next"
	accessoryRedirect = "Redirect"
)

// Option is one selectable entry of the payment chooser. Grouped entries such
// as Installments collapse several wire types and fan back out in a secondary
// picker; those carry an empty Source.
type Option struct {
	// Key is the stable identifier of the entry.
	Key string
	// Source is the wire type behind a direct entry; empty for grouped
	// entries.
	Source payment.SourceType
	// Title is the English display name.
	Title string
	// Icon names the list icon asset.
	Icon string
	// RequiresAdditionalDetails reports whether selecting the entry opens a
	// form before submission rather than redirecting immediately.
	RequiresAdditionalDetails bool
}

// AccessoryIcon names the trailing icon asset: a chevron when the entry opens
// a form, a redirect mark otherwise.
func (o Option) AccessoryIcon() string {
	if o.RequiresAdditionalDetails {
		return accessoryNext
	}
	return accessoryRedirect
}

// Grouped entries.
var (
	creditCard = Option{
		Key: "credit_card", Title: "Credit Card", Icon: "Card",
		RequiresAdditionalDetails: true,
	}
	installments = Option{
		Key: "installments", Title: "Installments", Icon: "Installment",
		RequiresAdditionalDetails: true,
	}
	internetBanking = Option{
		Key: "internet_banking", Title: "Internet Banking", Icon: "Banking",
		RequiresAdditionalDetails: true,
	}
	mobileBanking = Option{
		Key: "mobile_banking", Title: "Mobile Banking", Icon: "MobileBanking",
		RequiresAdditionalDetails: true,
	}
	econtextConbini = Option{
		Key: "econtext_conbini", Title: "Konbini", Icon: "Konbini",
		RequiresAdditionalDetails: true,
	}
	econtextNetBanking = Option{
		Key: "econtext_net_banking", Title: "Net Bank", Icon: "Netbank",
		RequiresAdditionalDetails: true,
	}
	econtextPayEasy = Option{
		Key: "econtext_pay_easy", Title: "Pay-easy", Icon: "Payeasy",
		RequiresAdditionalDetails: true,
	}
)

// Direct source-type entries the chooser knows how to render.
var sourceOptions = map[payment.SourceType]Option{
	payment.SourceAlipay:                {Title: "Alipay", Icon: "Alipay"},
	payment.SourceAlipayCN:              {Title: "Alipay CN", Icon: "AlipayCN"},
	payment.SourceAlipayHK:              {Title: "Alipay HK", Icon: "AlipayHK"},
	payment.SourceAtome:                 {Title: "Atome", Icon: "Atome", RequiresAdditionalDetails: true},
	payment.SourceBillPaymentTescoLotus: {Title: "Tesco Lotus", Icon: "Tesco"},
	payment.SourceBoost:                 {Title: "Boost", Icon: "Boost"},
	payment.SourceDana:                  {Title: "DANA", Icon: "dana"},
	payment.SourceDuitNowOBW:            {Title: "DuitNow Online Banking/Wallets", Icon: "Duitnow-OBW", RequiresAdditionalDetails: true},
	payment.SourceDuitNowQR:             {Title: "DuitNow QR", Icon: "DuitNow-QR"},
	payment.SourceFPX:                   {Title: "FPX", Icon: "FPX", RequiresAdditionalDetails: true},
	payment.SourceGCash:                 {Title: "GCash", Icon: "gcash"},
	payment.SourceGrabPay:               {Title: "GrabPay", Icon: "Grab"},
	payment.SourceKakaoPay:              {Title: "KakaoPay", Icon: "kakaopay"},
	payment.SourceMaybankQRPay:          {Title: "Maybank QRPay", Icon: "MAE-maybank"},
	payment.SourceMobileBankingOCBC:     {Title: "OCBC Digital", Icon: "ocbc-digital"},
	payment.SourcePayNow:                {Title: "PayNow", Icon: "PayNow"},
	payment.SourcePayPay:                {Title: "PayPay", Icon: "PayPay"},
	payment.SourcePointsCiti:            {Title: "Pay with Citi Rewards Points", Icon: "CitiBank"},
	payment.SourcePromptPay:             {Title: "PromptPay", Icon: "PromptPay"},
	payment.SourceRabbitLinePay:         {Title: "Rabbit LINE Pay", Icon: "RabbitLinePay"},
	payment.SourceShopeePay:             {Title: "ShopeePay", Icon: "Shopeepay"},
	payment.SourceShopeePayJumpApp:      {Title: "ShopeePay", Icon: "Shopeepay"},
	payment.SourceTouchNGo:              {Title: "Touch 'n Go", Icon: "touch-n-go"},
	payment.SourceTrueMoney:             {Title: "TrueMoney Wallet", Icon: "TrueMoney", RequiresAdditionalDetails: true},
	payment.SourceTrueMoneyJumpApp:      {Title: "TrueMoney", Icon: "TrueMoney"},
	payment.SourceWeChat:                {Title: "WeChat Pay", Icon: "wechat_pay"},
}

func sourceOption(t payment.SourceType) (Option, bool) {
	o, ok := sourceOptions[t]
	if !ok {
		return Option{}, false
	}
	o.Key = string(t)
	o.Source = t
	return o, true
}
