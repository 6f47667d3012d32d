package validation

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML:
		return nil
	}
	return fmt.Errorf("expected output format of %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML, format)
}

// ValidatePrecision checks if the precision mode is supported.
func ValidatePrecision(precision string) error {
	if precision != constants.PrecisionFloat && precision != constants.PrecisionDecimal {
		return fmt.Errorf("expected precision of %s or %s, got %s",
			constants.PrecisionFloat, constants.PrecisionDecimal, precision)
	}
	return nil
}
