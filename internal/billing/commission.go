package billing

// Per-day fee rates in minor units.
const (
	assistanceFeePerDay       = 1
	deductibleReductionPerDay = 4
)

// Commission is the decomposition of a rental's price between the fee
// takers, plus the deductible-reduction surcharge. It is computed once per
// rental and carried as a value from then on.
type Commission struct {
	InsuranceFee  int
	AssistanceFee int
	DrivyFee      int
	// DeductibleReductionFee is charged to the driver and rebated to the
	// platform on top of the price; it is not part of the three-way split.
	DeductibleReductionFee int
}

// Compute splits a rental price for a rental of the given length in days.
// DrivyFee is the residual after the insurance and assistance cuts, so
// InsuranceFee + AssistanceFee + DrivyFee always equals price exactly and
// absorbs the rounding loss of the halving step.
func Compute(price, days int) Commission {
	insurance := price / 2
	assistance := assistanceFeePerDay * days
	return Commission{
		InsuranceFee:           insurance,
		AssistanceFee:          assistance,
		DrivyFee:               price - insurance - assistance,
		DeductibleReductionFee: deductibleReductionPerDay * days,
	}
}

// TotalFee is the sum of the three commission parts, equal to the rental
// price by construction.
func (c Commission) TotalFee() int {
	return c.InsuranceFee + c.AssistanceFee + c.DrivyFee
}
