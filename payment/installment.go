package payment

// InstallmentBrand is the bank or card brand suffix of an installment type tag.
type InstallmentBrand string

const (
	InstallmentBAY         InstallmentBrand = "bay"
	InstallmentFirstChoice InstallmentBrand = "first_choice"
	InstallmentBBL         InstallmentBrand = "bbl"
	InstallmentMBB         InstallmentBrand = "mbb"
	InstallmentKTC         InstallmentBrand = "ktc"
	InstallmentKBank       InstallmentBrand = "kbank"
	InstallmentSCB         InstallmentBrand = "scb"
	InstallmentTTB         InstallmentBrand = "ttb"
	InstallmentUOB         InstallmentBrand = "uob"
)

// KnownInstallmentBrands lists the brands the client ships support for, in
// presentation order.
var KnownInstallmentBrands = []InstallmentBrand{
	InstallmentBAY,
	InstallmentFirstChoice,
	InstallmentBBL,
	InstallmentMBB,
	InstallmentKTC,
	InstallmentKBank,
	InstallmentSCB,
	InstallmentTTB,
	InstallmentUOB,
}

func (b InstallmentBrand) Known() bool {
	switch b {
	case InstallmentBAY, InstallmentFirstChoice, InstallmentBBL, InstallmentMBB,
		InstallmentKTC, InstallmentKBank, InstallmentSCB, InstallmentTTB, InstallmentUOB:
		return true
	default:
		return false
	}
}

// DefaultTerms returns the brand's default set of available term counts, used
// when no capability document is available to override them. Unknown brands
// allow 1 through 60 terms.
func (b InstallmentBrand) DefaultTerms() []int {
	switch b {
	case InstallmentBAY:
		return []int{3, 4, 6, 9, 10}
	case InstallmentFirstChoice:
		return []int{3, 4, 6, 9, 10, 12, 18, 24, 36}
	case InstallmentBBL:
		return []int{4, 6, 8, 9, 10}
	case InstallmentMBB:
		return []int{6, 12, 18, 24}
	case InstallmentKTC:
		return []int{3, 4, 5, 6, 7, 8, 9, 10}
	case InstallmentKBank:
		return []int{3, 4, 6, 10}
	case InstallmentSCB:
		return []int{3, 4, 6, 9, 10}
	case InstallmentTTB:
		return []int{3, 4, 6, 10, 12}
	case InstallmentUOB:
		return []int{3, 4, 6, 10}
	default:
		terms := make([]int, 0, 60)
		for i := 1; i <= 60; i++ {
			terms = append(terms, i)
		}
		return terms
	}
}

// Installment is an installment payment split over a number of terms.
type Installment struct {
	Brand         InstallmentBrand
	NumberOfTerms int
}

func (m Installment) SourceType() SourceType {
	return SourceType(PrefixInstallment + string(m.Brand))
}

// BillPaymentService is the service suffix of a bill payment type tag.
type BillPaymentService string

const BillPaymentTescoLotus BillPaymentService = "tesco_lotus"

// BillPayment is an over-the-counter bill payment through one service.
type BillPayment struct {
	Service BillPaymentService
}

func (m BillPayment) SourceType() SourceType {
	return SourceType(PrefixBillPayment + string(m.Service))
}

// PointsProgram is the program suffix of a points type tag.
type PointsProgram string

const PointsCiti PointsProgram = "citi"

// Points is a reward-points payment through one program.
type Points struct {
	Program PointsProgram
}

func (m Points) SourceType() SourceType {
	return SourceType(PrefixPoints + string(m.Program))
}
