// Package output provides utilities for formatting and displaying quote results.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iwvelando/mortgage-calculator/internal/quote"
	"github.com/iwvelando/mortgage-calculator/pkg/format"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"gopkg.in/yaml.v3"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(results []quote.Quote, formatter *format.Formatter) {
	WritePretty(os.Stdout, results, formatter)
}

// WritePretty writes the human-readable table to w.
func WritePretty(w io.Writer, results []quote.Quote, formatter *format.Formatter) {
	if formatter == nil {
		formatter = format.NewFormatter("")
	}
	for i, result := range results {
		_, _ = fmt.Fprintf(w, "--- Results for quote %s ---\n", result.Name)
		_, _ = fmt.Fprintf(w, "Mortgage amount   | %s\n", formatter.Format(result.Input.Amount))
		_, _ = fmt.Fprintf(w, "Mortgage term     | %d years\n", result.Input.Term)
		_, _ = fmt.Fprintf(w, "Interest rate     | %.2f%%\n", result.Input.Rate)
		_, _ = fmt.Fprintf(w, "Mortgage type     | %s\n", result.Input.Type.Label())
		_, _ = fmt.Fprintf(w, "Monthly repayment | %s\n", formatter.Format(result.Result.MonthlyPayment))
		_, _ = fmt.Fprintf(w, "Total repayment   | %s\n", formatter.Format(result.Result.TotalPayment))
		_, _ = fmt.Fprintf(w, "Total interest    | %s\n", formatter.Format(result.Result.TotalInterest))
		if i < len(results)-1 {
			_, _ = fmt.Fprintf(w, "\n")
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []quote.Quote) {
	fmt.Print(CsvString(results))
}

// CsvString returns the comma-separated value representation of results.
func CsvString(results []quote.Quote) string {
	var b strings.Builder
	b.WriteString(`"name","amount","rate","term","type","monthly payment","total payment","total interest"`)
	b.WriteString("\n")
	for _, result := range results {
		fmt.Fprintf(&b, `"%s"`, strings.ReplaceAll(result.Name, `"`, `""`))
		fmt.Fprintf(&b, `,"%.2f","%g","%d","%s"`,
			result.Input.Amount, result.Input.Rate, result.Input.Term, result.Input.Type)
		fmt.Fprintf(&b, `,"%.2f","%.2f","%.2f"`,
			result.Result.MonthlyPayment, result.Result.TotalPayment, result.Result.TotalInterest)
		b.WriteString("\n")
	}
	return b.String()
}

type yamlQuote struct {
	Name           string  `yaml:"name"`
	Amount         float64 `yaml:"amount"`
	Rate           float64 `yaml:"rate"`
	Term           int     `yaml:"term"`
	Type           string  `yaml:"type"`
	MonthlyPayment float64 `yaml:"monthlyPayment"`
	TotalPayment   float64 `yaml:"totalPayment"`
	TotalInterest  float64 `yaml:"totalInterest"`
}

// YAMLFormat outputs results as a YAML document.
func YAMLFormat(results []quote.Quote) error {
	out, err := YAMLString(results)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// YAMLString returns results as a YAML document with currency values
// rounded to two decimals.
func YAMLString(results []quote.Quote) (string, error) {
	doc := struct {
		Quotes []yamlQuote `yaml:"quotes"`
	}{Quotes: make([]yamlQuote, 0, len(results))}

	for _, result := range results {
		doc.Quotes = append(doc.Quotes, yamlQuote{
			Name:           result.Name,
			Amount:         result.Input.Amount,
			Rate:           result.Input.Rate,
			Term:           result.Input.Term,
			Type:           result.Input.Type.String(),
			MonthlyPayment: mathutil.Round(result.Result.MonthlyPayment),
			TotalPayment:   mathutil.Round(result.Result.TotalPayment),
			TotalInterest:  mathutil.Round(result.Result.TotalInterest),
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode quotes: %w", err)
	}
	return string(data), nil
}
