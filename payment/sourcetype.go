// Package payment models the payment methods accepted by the gateway and their
// type-discriminated wire encoding. Every method carries a canonical lowercase
// snake_case type tag; compound families (internet banking, installment, bill
// payment, barcode, points, mobile banking) encode a bank or brand suffix after
// a fixed family prefix. Unrecognized tags never fail to decode: they degrade
// to the forward-compatible Other variant.
package payment

// SourceType is the canonical wire tag identifying a payment method.
type SourceType string

const (
	SourceInternetBankingBAY SourceType = "internet_banking_bay"
	SourceInternetBankingBBL SourceType = "internet_banking_bbl"

	SourceMobileBankingSCB     SourceType = "mobile_banking_scb"
	SourceMobileBankingKBank   SourceType = "mobile_banking_kbank"
	SourceMobileBankingBAY     SourceType = "mobile_banking_bay"
	SourceMobileBankingBBL     SourceType = "mobile_banking_bbl"
	SourceMobileBankingKTB     SourceType = "mobile_banking_ktb"
	SourceMobileBankingOCBC    SourceType = "mobile_banking_ocbc"
	SourceMobileBankingOCBCPAO SourceType = "mobile_banking_ocbc_pao"

	SourceInstallmentBAY         SourceType = "installment_bay"
	SourceInstallmentFirstChoice SourceType = "installment_first_choice"
	SourceInstallmentBBL         SourceType = "installment_bbl"
	SourceInstallmentMBB         SourceType = "installment_mbb"
	SourceInstallmentKTC         SourceType = "installment_ktc"
	SourceInstallmentKBank       SourceType = "installment_kbank"
	SourceInstallmentSCB         SourceType = "installment_scb"
	SourceInstallmentTTB         SourceType = "installment_ttb"
	SourceInstallmentUOB         SourceType = "installment_uob"

	SourceAlipay   SourceType = "alipay"
	SourceAlipayCN SourceType = "alipay_cn"
	SourceAlipayHK SourceType = "alipay_hk"
	SourceDana     SourceType = "dana"
	SourceGCash    SourceType = "gcash"
	SourceKakaoPay SourceType = "kakaopay"
	SourceTouchNGo SourceType = "touch_n_go"

	SourceBillPaymentTescoLotus SourceType = "bill_payment_tesco_lotus"
	SourceBarcodeAlipay         SourceType = "barcode_alipay"
	SourcePointsCiti            SourceType = "points_citi"

	SourceEContext         SourceType = "econtext"
	SourcePromptPay        SourceType = "promptpay"
	SourcePayNow           SourceType = "paynow"
	SourceTrueMoney        SourceType = "truemoney"
	SourceTrueMoneyJumpApp SourceType = "truemoney_jumpapp"
	SourceFPX              SourceType = "fpx"
	SourceRabbitLinePay    SourceType = "rabbit_linepay"
	SourceGrabPay          SourceType = "grabpay"
	SourceBoost            SourceType = "boost"
	SourceShopeePay        SourceType = "shopeepay"
	SourceShopeePayJumpApp SourceType = "shopeepay_jumpapp"
	SourceMaybankQRPay     SourceType = "maybank_qr"
	SourceDuitNowQR        SourceType = "duitnow_qr"
	SourceDuitNowOBW       SourceType = "duitnow_obw"
	SourceAtome            SourceType = "atome"
	SourcePayPay           SourceType = "paypay"
	SourceWeChat           SourceType = "wechat_pay"
)

// Family prefixes for compound type tags. The suffix after the prefix names
// the bank, brand, or service.
const (
	PrefixInternetBanking = "internet_banking_"
	PrefixMobileBanking   = "mobile_banking_"
	PrefixInstallment     = "installment_"
	PrefixBillPayment     = "bill_payment_"
	PrefixBarcode         = "barcode_"
	PrefixPoints          = "points_"
)

var knownSourceTypes = map[SourceType]struct{}{
	SourceInternetBankingBAY:     {},
	SourceInternetBankingBBL:     {},
	SourceMobileBankingSCB:       {},
	SourceMobileBankingKBank:     {},
	SourceMobileBankingBAY:       {},
	SourceMobileBankingBBL:       {},
	SourceMobileBankingKTB:       {},
	SourceMobileBankingOCBC:      {},
	SourceMobileBankingOCBCPAO:   {},
	SourceInstallmentBAY:         {},
	SourceInstallmentFirstChoice: {},
	SourceInstallmentBBL:         {},
	SourceInstallmentMBB:         {},
	SourceInstallmentKTC:         {},
	SourceInstallmentKBank:       {},
	SourceInstallmentSCB:         {},
	SourceInstallmentTTB:         {},
	SourceInstallmentUOB:         {},
	SourceAlipay:                 {},
	SourceAlipayCN:               {},
	SourceAlipayHK:               {},
	SourceDana:                   {},
	SourceGCash:                  {},
	SourceKakaoPay:               {},
	SourceTouchNGo:               {},
	SourceBillPaymentTescoLotus:  {},
	SourceBarcodeAlipay:          {},
	SourcePointsCiti:             {},
	SourceEContext:               {},
	SourcePromptPay:              {},
	SourcePayNow:                 {},
	SourceTrueMoney:              {},
	SourceTrueMoneyJumpApp:       {},
	SourceFPX:                    {},
	SourceRabbitLinePay:          {},
	SourceGrabPay:                {},
	SourceBoost:                  {},
	SourceShopeePay:              {},
	SourceShopeePayJumpApp:       {},
	SourceMaybankQRPay:           {},
	SourceDuitNowQR:              {},
	SourceDuitNowOBW:             {},
	SourceAtome:                  {},
	SourcePayPay:                 {},
	SourceWeChat:                 {},
}

// Known reports whether the tag is part of the client's current inventory.
// Unknown tags are still decodable through the Other variant.
func (s SourceType) Known() bool {
	_, ok := knownSourceTypes[s]
	return ok
}

func (s SourceType) String() string { return string(s) }

// hasPrefix reports whether the tag belongs to the given compound family.
func (s SourceType) hasPrefix(prefix string) bool {
	return len(s) > len(prefix) && string(s[:len(prefix)]) == prefix
}

// IsInstallment reports whether the tag belongs to the installment family.
func (s SourceType) IsInstallment() bool { return s.hasPrefix(PrefixInstallment) }

// IsInternetBanking reports whether the tag belongs to the internet banking family.
func (s SourceType) IsInternetBanking() bool { return s.hasPrefix(PrefixInternetBanking) }

// IsMobileBanking reports whether the tag belongs to the mobile banking family.
func (s SourceType) IsMobileBanking() bool { return s.hasPrefix(PrefixMobileBanking) }
