// Package mortgage computes repayment figures for a mortgage from its
// principal, annual rate, term and repayment type.
package mortgage

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
)

// ErrInvalidLoanParameters is returned when a LoanInput violates the
// calculator's preconditions.
var ErrInvalidLoanParameters = errors.New("invalid loan parameters")

// RepaymentType selects the formula used to derive the monthly payment.
type RepaymentType int

const (
	// Repayment is a standard amortizing loan.
	Repayment RepaymentType = iota + 1
	// InterestOnly pays interest monthly and leaves the principal outstanding.
	InterestOnly
)

// String returns the form value of the repayment type.
func (t RepaymentType) String() string {
	switch t {
	case Repayment:
		return "repayment"
	case InterestOnly:
		return "interest"
	default:
		return fmt.Sprintf("RepaymentType(%d)", int(t))
	}
}

// Label returns the human-readable name of the repayment type.
func (t RepaymentType) Label() string {
	switch t {
	case Repayment:
		return "Repayment"
	case InterestOnly:
		return "Interest Only"
	default:
		return t.String()
	}
}

// Valid reports whether t is a known repayment type.
func (t RepaymentType) Valid() bool {
	return t == Repayment || t == InterestOnly
}

// ParseRepaymentType converts a form or config value into a RepaymentType.
func ParseRepaymentType(value string) (RepaymentType, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "repayment":
		return Repayment, nil
	case "interest", "interest-only", "interest_only", "interestonly":
		return InterestOnly, nil
	default:
		return 0, fmt.Errorf("unknown repayment type %q", value)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t RepaymentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown repayment type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RepaymentType) UnmarshalText(text []byte) error {
	parsed, err := ParseRepaymentType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// LoanInput holds the validated parameters for a single calculation.
type LoanInput struct {
	Amount float64       // principal borrowed
	Rate   float64       // nominal annual rate as a percentage
	Term   int           // years
	Type   RepaymentType
}

// PaymentResult holds the aggregate figures for a loan. Values are not
// rounded; rounding is a presentation concern.
type PaymentResult struct {
	MonthlyPayment float64
	TotalPayment   float64
	TotalInterest  float64
}

// NumberOfPayments returns the number of monthly payments over the term.
func (in LoanInput) NumberOfPayments() int {
	return in.Term * constants.MonthsPerYear
}

// Validate checks the calculator preconditions.
func (in LoanInput) Validate() error {
	switch {
	case !mathutil.IsFinite(in.Amount) || in.Amount <= 0:
		return fmt.Errorf("%w: amount must be positive, got %v", ErrInvalidLoanParameters, in.Amount)
	case !mathutil.IsFinite(in.Rate) || in.Rate <= 0:
		return fmt.Errorf("%w: rate must be positive, got %v", ErrInvalidLoanParameters, in.Rate)
	case in.Term <= 0:
		return fmt.Errorf("%w: term must be positive, got %d", ErrInvalidLoanParameters, in.Term)
	case in.Term > constants.MaxTermYears:
		return fmt.Errorf("%w: term must be at most %d years, got %d", ErrInvalidLoanParameters, constants.MaxTermYears, in.Term)
	case !in.Type.Valid():
		return fmt.Errorf("%w: %s", ErrInvalidLoanParameters, in.Type)
	}
	return nil
}

// Calculate derives the monthly payment, total payment and total interest
// for the loan.
func Calculate(in LoanInput) (PaymentResult, error) {
	if err := in.Validate(); err != nil {
		return PaymentResult{}, err
	}

	monthlyRate := mathutil.MonthlyRate(in.Rate)
	numberOfPayments := float64(in.NumberOfPayments())

	var result PaymentResult
	switch in.Type {
	case InterestOnly:
		result.MonthlyPayment = CalculateInterestPayment(in.Amount, monthlyRate)
		result.TotalInterest = result.MonthlyPayment * numberOfPayments
		result.TotalPayment = result.TotalInterest + in.Amount
	case Repayment:
		result.MonthlyPayment = CalculateMonthlyPayment(in.Amount, monthlyRate, numberOfPayments)
		result.TotalPayment = result.MonthlyPayment * numberOfPayments
		result.TotalInterest = result.TotalPayment - in.Amount
	}

	if !mathutil.IsFinite(result.MonthlyPayment) || !mathutil.IsFinite(result.TotalPayment) {
		return PaymentResult{}, fmt.Errorf("%w: result is not finite for amount %v at %v%% over %d years",
			ErrInvalidLoanParameters, in.Amount, in.Rate, in.Term)
	}

	interest, err := settleInterest(in, result.TotalInterest)
	if err != nil {
		return PaymentResult{}, err
	}
	if interest != result.TotalInterest {
		result.TotalInterest = interest
		result.TotalPayment = in.Amount
	}
	return result, nil
}

// settleInterest absorbs rounding noise that leaves total interest slightly
// below zero at rates close to zero. Anything beyond a cent is an error.
func settleInterest(in LoanInput, interest float64) (float64, error) {
	if interest >= 0 {
		return interest, nil
	}
	if !mathutil.IsZero(interest) {
		return 0, fmt.Errorf("%w: negative interest %v for amount %v at %v%% over %d years",
			ErrInvalidLoanParameters, interest, in.Amount, in.Rate, in.Term)
	}
	return 0, nil
}

// CalculateMonthlyPayment applies the annuity formula for a monthly rate r
// over n payments. r must be positive.
//
// The formula is evaluated as P*r / (1 - (1+r)^-n) with log1p/expm1 so that
// it keeps full precision when r is close to zero and does not overflow
// when n is large.
func CalculateMonthlyPayment(principal, monthlyRate, numberOfPayments float64) float64 {
	discount := -math.Expm1(-numberOfPayments * math.Log1p(monthlyRate))
	return principal * monthlyRate / discount
}

// CalculateInterestPayment returns one month's interest on the principal.
func CalculateInterestPayment(principal, monthlyRate float64) float64 {
	return principal * monthlyRate
}
