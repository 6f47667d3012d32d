package integration

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/testutil"
	"go.uber.org/zap"
)

func loadQuotes(t *testing.T) (*config.Configuration, []quote.Quote) {
	t.Helper()

	conf, err := config.LoadConfiguration("../test_config.yaml")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	results, err := quote.GetQuotes(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}
	return conf, results
}

// TestMainIntegrationBaseline runs the fixture through the same pipeline as
// main() and checks the figures against known values.
func TestMainIntegrationBaseline(t *testing.T) {
	_, results := loadQuotes(t)

	expectedQuotes := []string{
		"25 year repayment",
		"25 year interest only",
		"first time buyer",
		"15 year remortgage",
	}
	if len(results) != len(expectedQuotes) {
		t.Fatalf("Expected %d quotes, got %d", len(expectedQuotes), len(results))
	}
	for i, expected := range expectedQuotes {
		if results[i].Name != expected {
			t.Errorf("Expected quote %s at position %d, got %s", expected, i, results[i].Name)
		}
	}

	baselineChecks := []struct {
		quote    string
		monthly  float64
		total    float64
		interest float64
	}{
		{"25 year repayment", 1228.17, 368452.50, 168452.50},
		{"25 year interest only", 916.67, 475000.00, 275000.00},
		{"first time buyer", 1721.79, 619844.26, 269844.26},
		{"15 year remortgage", 1090.83, 196350.06, 46350.06},
	}

	for _, check := range baselineChecks {
		result := testutil.FindQuote(results, check.quote)
		if result == nil {
			t.Errorf("Quote '%s' not found in results", check.quote)
			continue
		}
		if !testutil.CurrencyEqual(result.Result.MonthlyPayment, check.monthly) {
			t.Errorf("Quote '%s' monthly payment: expected %.2f, got %.2f",
				check.quote, check.monthly, result.Result.MonthlyPayment)
		}
		if !testutil.CurrencyEqual(result.Result.TotalPayment, check.total) {
			t.Errorf("Quote '%s' total payment: expected %.2f, got %.2f",
				check.quote, check.total, result.Result.TotalPayment)
		}
		if !testutil.CurrencyEqual(result.Result.TotalInterest, check.interest) {
			t.Errorf("Quote '%s' total interest: expected %.2f, got %.2f",
				check.quote, check.interest, result.Result.TotalInterest)
		}
	}
}

// TestDataConsistency checks the invariants every computed quote must hold.
func TestDataConsistency(t *testing.T) {
	_, results := loadQuotes(t)

	for _, result := range results {
		r := result.Result
		if math.Abs(r.TotalPayment-(r.TotalInterest+result.Input.Amount)) > 1e-6 {
			t.Errorf("Quote '%s': total payment %.6f != interest %.6f + amount %.2f",
				result.Name, r.TotalPayment, r.TotalInterest, result.Input.Amount)
		}
		if r.MonthlyPayment <= 0 || r.TotalInterest < 0 {
			t.Errorf("Quote '%s': expected positive figures, got %+v", result.Name, r)
		}
		if r.TotalPayment < result.Input.Amount {
			t.Errorf("Quote '%s': total payment %.2f below amount %.2f",
				result.Name, r.TotalPayment, result.Input.Amount)
		}
	}
}

// TestDecimalPrecisionMatchesFloat runs the fixture in both arithmetic modes.
func TestDecimalPrecisionMatchesFloat(t *testing.T) {
	conf, floatResults := loadQuotes(t)

	conf.Output.Precision = constants.PrecisionDecimal
	decimalResults, err := quote.GetQuotes(zap.NewNop(), *conf)
	if err != nil {
		t.Fatalf("GetQuotes() error = %v", err)
	}

	for i := range floatResults {
		f, d := floatResults[i].Result, decimalResults[i].Result
		if math.Abs(f.MonthlyPayment-d.MonthlyPayment) > 1e-6 ||
			math.Abs(f.TotalPayment-d.TotalPayment) > 1e-4 {
			t.Errorf("Quote '%s': float %+v and decimal %+v disagree", floatResults[i].Name, f, d)
		}
	}
}

// TestPrettyOutputFormat tests the pretty print output
func TestPrettyOutputFormat(t *testing.T) {
	conf, results := loadQuotes(t)

	var buf bytes.Buffer
	output.WritePretty(&buf, results, format.NewFormatter(conf.Output.Locale))
	out := buf.String()

	expected := []string{
		"--- Results for quote 25 year repayment ---",
		"Monthly repayment | £1,228.17",
		"--- Results for quote first time buyer ---",
		"Mortgage amount   | £350,000.00",
		"Interest rate     | 4.25%",
		"Mortgage term     | 30 years",
		"Total interest    | £269,844.26",
	}
	for _, want := range expected {
		if !strings.Contains(out, want) {
			t.Errorf("Pretty output missing %q", want)
		}
	}
	if strings.Count(out, "--- Results for quote") != len(results) {
		t.Errorf("Expected one section per quote")
	}
}

// TestCsvFormat checks the CSV output line per quote
func TestCsvFormat(t *testing.T) {
	_, results := loadQuotes(t)

	lines := strings.Split(strings.TrimSuffix(output.CsvString(results), "\n"), "\n")
	if len(lines) != len(results)+1 {
		t.Fatalf("Expected %d CSV lines, got %d", len(results)+1, len(lines))
	}
	for _, line := range lines[1:] {
		if parts := strings.Split(line, ","); len(parts) != 8 {
			t.Errorf("CSV line should have 8 parts, got %d: %s", len(parts), line)
		}
	}
	if lines[3] != `"first time buyer","350000.00","4.25","30","repayment","1721.79","619844.26","269844.26"` {
		t.Errorf("Unexpected CSV row: %s", lines[3])
	}
}

// TestYAMLOutputFormat checks that YAML output carries every quote
func TestYAMLOutputFormat(t *testing.T) {
	_, results := loadQuotes(t)

	out, err := output.YAMLString(results)
	if err != nil {
		t.Fatalf("YAMLString() error = %v", err)
	}
	if strings.Count(out, "- name: ") != len(results) {
		t.Errorf("Expected %d YAML entries:\n%s", len(results), out)
	}
	if !strings.Contains(out, "monthlyPayment: 916.67") {
		t.Errorf("Expected rounded interest-only payment in YAML:\n%s", out)
	}
}

// TestConfigurationValidation checks warnings raised for unusual quotes
func TestConfigurationValidation(t *testing.T) {
	conf, _ := loadQuotes(t)
	if warnings := conf.ValidateConfiguration(); len(warnings) != 0 {
		t.Errorf("Expected no warnings for the fixture, got %v", warnings)
	}

	tests := []struct {
		name         string
		contents     string
		wantWarnings int
		wantQuoteErr bool
	}{
		{
			name: "high rate and long term",
			contents: `quotes:
  - name: risky
    amount: 100000
    rate: 30
    term: 45
    type: repayment
`,
			wantWarnings: 2,
		},
		{
			name: "duplicate names",
			contents: `quotes:
  - name: same
    amount: 100000
    rate: 3
    term: 20
    type: repayment
  - name: same
    amount: 100000
    rate: 3
    term: 20
    type: interest
`,
			wantWarnings: 1,
		},
		{
			name: "invalid quote",
			contents: `quotes:
  - name: broken
    amount: abc
    rate: 3
    term: 20
    type: repayment
`,
			wantQuoteErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.contents), 0600); err != nil {
				t.Fatalf("failed to write config: %v", err)
			}

			conf, err := config.LoadConfiguration(path)
			if err != nil {
				t.Fatalf("LoadConfiguration() error = %v", err)
			}

			if warnings := conf.ValidateConfiguration(); len(warnings) != tt.wantWarnings {
				t.Errorf("Expected %d warnings, got %d: %v", tt.wantWarnings, len(warnings), warnings)
			}

			_, err = quote.GetQuotes(zap.NewNop(), *conf)
			if tt.wantQuoteErr {
				if err == nil {
					t.Errorf("Expected GetQuotes() to fail")
				}
				return
			}
			if err != nil {
				t.Errorf("GetQuotes() error = %v", err)
			}
		})
	}
}

// TestBasicFunctionality runs the two headline quotes straight through the
// calculator without configuration.
func TestBasicFunctionality(t *testing.T) {
	for _, repaymentType := range []mortgage.RepaymentType{mortgage.Repayment, mortgage.InterestOnly} {
		result, err := quote.Compute(mortgage.LoanInput{
			Amount: 200000,
			Rate:   5.5,
			Term:   25,
			Type:   repaymentType,
		}, "")
		if err != nil {
			t.Fatalf("Compute(%s) error = %v", repaymentType, err)
		}
		if result.TotalPayment <= 200000 {
			t.Errorf("Compute(%s) total payment %.2f should exceed the amount", repaymentType, result.TotalPayment)
		}
	}
}
