// Package configprocessor provides shared configuration processing utilities.
package configprocessor

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// QuoteInfo represents quote configuration information
type QuoteInfo struct {
	Name string
	Rate float64
	Term int
}

// Processor handles configuration processing and validation
type Processor struct{}

// NewProcessor creates a new configuration processor
func NewProcessor() *Processor {
	return &Processor{}
}

// ValidateConfiguration validates the configuration and returns warnings
func (p *Processor) ValidateConfiguration(quotes []QuoteInfo) []string {
	var warnings []string

	if len(quotes) == 0 {
		return []string{"No quotes configured"}
	}

	seen := make(map[string]bool, len(quotes))
	for _, quote := range quotes {
		if seen[quote.Name] {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' is defined more than once", quote.Name))
		}
		seen[quote.Name] = true

		if quote.Rate > constants.HighRateWarningThreshold {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' has an unusually high rate (%.2f%% > %.2f%%)",
				quote.Name, quote.Rate, constants.HighRateWarningThreshold))
		}
		if quote.Term > constants.LongTermWarningYears {
			warnings = append(warnings, fmt.Sprintf("Quote '%s' has an unusually long term (%d > %d years)",
				quote.Name, quote.Term, constants.LongTermWarningYears))
		}
	}

	if len(warnings) == 0 {
		return nil
	}
	return warnings
}
