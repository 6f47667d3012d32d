// Package quote defines the data structures related to a mortgage quote and
// includes functions for computing quotes from configuration.
package quote

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/zap"
)

// Quote holds the parameters and computed figures for one named loan.
type Quote struct {
	Name   string
	Input  mortgage.LoanInput
	Result mortgage.PaymentResult
}

// Compute runs a single input through the calculator using the requested
// precision mode. An empty precision means constants.PrecisionFloat.
func Compute(input mortgage.LoanInput, precision string) (mortgage.PaymentResult, error) {
	switch precision {
	case "", constants.PrecisionFloat:
		return mortgage.Calculate(input)
	case constants.PrecisionDecimal:
		result, err := mortgage.CalculateDecimal(input)
		if err != nil {
			return mortgage.PaymentResult{}, err
		}
		return result.Float(), nil
	default:
		return mortgage.PaymentResult{}, fmt.Errorf("unknown precision %q", precision)
	}
}

// GetQuotes computes every configured quote, in configuration order.
func GetQuotes(logger *zap.Logger, conf config.Configuration) ([]Quote, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	inputs, err := conf.Inputs()
	if err != nil {
		return nil, err
	}

	results := make([]Quote, 0, len(inputs))
	for _, named := range inputs {
		result, err := Compute(named.Input, conf.Output.Precision)
		if err != nil {
			return results, fmt.Errorf("failed to compute quote %q: %w", named.Name, err)
		}

		logger.Debug(fmt.Sprintf("computed quote %s", named.Name),
			zap.String("op", "quote.GetQuotes"),
			zap.Float64("amount", named.Input.Amount),
			zap.Float64("rate", named.Input.Rate),
			zap.Int("term", named.Input.Term),
			zap.Stringer("type", named.Input.Type),
			zap.Float64("monthlyPayment", result.MonthlyPayment),
		)

		results = append(results, Quote{Name: named.Name, Input: named.Input, Result: result})
	}

	return results, nil
}
