// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"

	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// FindQuote finds a quote by name in the results slice.
// Returns a pointer to the quote if found, nil otherwise.
func FindQuote(results []quote.Quote, name string) *quote.Quote {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// CurrencyEqual reports whether two amounts agree to within a cent.
func CurrencyEqual(a, b float64) bool {
	return math.Abs(a-b) <= constants.CurrencyTolerance
}
