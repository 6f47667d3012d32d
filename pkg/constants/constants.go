// Package constants provides shared constants for the mortgage-calculator application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalWorkingPlaces is the number of places kept between decimal
	// operations when computing in fixed precision.
	DecimalWorkingPlaces = 28
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Precision modes
const (
	// PrecisionFloat computes with float64 arithmetic
	PrecisionFloat = "float"

	// PrecisionDecimal computes with arbitrary-precision decimals
	PrecisionDecimal = "decimal"
)

// Locale defaults
const (
	// DefaultLocale is used when no locale is configured or it is unknown
	DefaultLocale = "en-GB"

	// DefaultCurrency is used when a locale has no currency mapping
	DefaultCurrency = "GBP"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Validation thresholds that produce configuration warnings
const (
	// HighRateWarningThreshold is the annual rate above which a quote is flagged
	HighRateWarningThreshold = 25.0

	// LongTermWarningYears is the term above which a quote is flagged
	LongTermWarningYears = 40

	// MaxTermYears is the longest term the calculator accepts
	MaxTermYears = 100
)
