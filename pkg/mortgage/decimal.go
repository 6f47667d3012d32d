package mortgage

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/shopspring/decimal"
)

// minDecimalMonthlyRate keeps at least twelve significant digits of the
// monthly rate inside the working precision.
var minDecimalMonthlyRate = decimal.New(1, -(constants.DecimalWorkingPlaces - 12))

// DecimalResult is PaymentResult computed in fixed decimal precision.
type DecimalResult struct {
	MonthlyPayment decimal.Decimal
	TotalPayment   decimal.Decimal
	TotalInterest  decimal.Decimal
}

// Float converts the result back to float64 values.
func (r DecimalResult) Float() PaymentResult {
	return PaymentResult{
		MonthlyPayment: r.MonthlyPayment.InexactFloat64(),
		TotalPayment:   r.TotalPayment.InexactFloat64(),
		TotalInterest:  r.TotalInterest.InexactFloat64(),
	}
}

// CalculateDecimal evaluates the same formulas as Calculate with
// intermediate values held to constants.DecimalWorkingPlaces places.
func CalculateDecimal(in LoanInput) (DecimalResult, error) {
	if err := in.Validate(); err != nil {
		return DecimalResult{}, err
	}

	amount := decimal.NewFromFloat(in.Amount)
	monthlyRate := decimal.NewFromFloat(in.Rate).
		DivRound(decimal.NewFromInt(constants.MonthsPerYear), constants.DecimalWorkingPlaces).
		DivRound(decimal.NewFromFloat(constants.PercentageMultiplier), constants.DecimalWorkingPlaces)
	if monthlyRate.LessThan(minDecimalMonthlyRate) {
		return DecimalResult{}, fmt.Errorf("%w: rate %v%% is below decimal working precision",
			ErrInvalidLoanParameters, in.Rate)
	}
	n := in.NumberOfPayments()
	numberOfPayments := decimal.NewFromInt(int64(n))

	var result DecimalResult
	switch in.Type {
	case InterestOnly:
		result.MonthlyPayment = amount.Mul(monthlyRate)
		result.TotalInterest = result.MonthlyPayment.Mul(numberOfPayments)
		result.TotalPayment = result.TotalInterest.Add(amount)
	case Repayment:
		power := powInt(decimal.NewFromInt(1).Add(monthlyRate), n)
		growth := power.Sub(decimal.NewFromInt(1))
		if growth.Sign() <= 0 {
			return DecimalResult{}, fmt.Errorf("%w: result is not finite for amount %v at %v%% over %d years",
				ErrInvalidLoanParameters, in.Amount, in.Rate, in.Term)
		}
		result.MonthlyPayment = amount.Mul(monthlyRate).Mul(power).
			DivRound(growth, constants.DecimalWorkingPlaces)
		result.TotalPayment = result.MonthlyPayment.Mul(numberOfPayments)
		result.TotalInterest = result.TotalPayment.Sub(amount)
	}

	if result.TotalInterest.IsNegative() {
		if _, err := settleInterest(in, result.TotalInterest.InexactFloat64()); err != nil {
			return DecimalResult{}, err
		}
		result.TotalInterest = decimal.Zero
		result.TotalPayment = amount
	}
	return result, nil
}

// powInt raises base to a non-negative integer power by squaring, rounding
// after each product so the digit count stays bounded.
func powInt(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(base).Round(constants.DecimalWorkingPlaces)
		}
		base = base.Mul(base).Round(constants.DecimalWorkingPlaces)
		exp >>= 1
	}
	return result
}
