// Package validation turns raw user input into validated calculator
// parameters and checks other user-supplied options.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/mathutil"
	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"go.uber.org/multierr"
)

// Form field names.
const (
	FieldAmount = "amount"
	FieldTerm   = "term"
	FieldRate   = "rate"
	FieldType   = "type"
)

// MessageRequired is reported for empty fields.
const MessageRequired = "This field is required"

// Form holds the raw text entered for each field.
type Form struct {
	Amount string
	Term   string
	Rate   string
	Type   string
}

// FieldError describes why a single field was rejected.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ParseForm validates every field of the form and returns the parsed
// input. All field failures are combined into the returned error.
func ParseForm(form Form) (mortgage.LoanInput, error) {
	var (
		input mortgage.LoanInput
		err   error
		errs  error
	)

	input.Amount, err = ParseAmount(form.Amount)
	errs = multierr.Append(errs, err)

	input.Term, err = ParseTerm(form.Term)
	errs = multierr.Append(errs, err)

	input.Rate, err = ParseRate(form.Rate)
	errs = multierr.Append(errs, err)

	input.Type, err = ParseType(form.Type)
	errs = multierr.Append(errs, err)

	if errs != nil {
		return mortgage.LoanInput{}, errs
	}
	return input, nil
}

// ParseAmount parses the principal. Grouping separators are ignored.
func ParseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(strings.TrimSpace(raw))
	return parsePositiveFloat(FieldAmount, cleaned)
}

// ParseRate parses the annual percentage rate. A trailing percent sign is
// accepted.
func ParseRate(raw string) (float64, error) {
	cleaned := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	return parsePositiveFloat(FieldRate, cleaned)
}

// ParseTerm parses the term in whole years.
func ParseTerm(raw string) (int, error) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0, &FieldError{Field: FieldTerm, Message: MessageRequired}
	}
	term, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, &FieldError{Field: FieldTerm, Message: "Enter a whole number of years"}
	}
	if term <= 0 {
		return 0, &FieldError{Field: FieldTerm, Message: "Must be greater than zero"}
	}
	if term > constants.MaxTermYears {
		return 0, &FieldError{Field: FieldTerm, Message: fmt.Sprintf("Must be %d years or less", constants.MaxTermYears)}
	}
	return term, nil
}

// ParseType parses the repayment type.
func ParseType(raw string) (mortgage.RepaymentType, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, &FieldError{Field: FieldType, Message: MessageRequired}
	}
	t, err := mortgage.ParseRepaymentType(raw)
	if err != nil {
		return 0, &FieldError{Field: FieldType, Message: "Choose Repayment or Interest Only"}
	}
	return t, nil
}

func parsePositiveFloat(field, value string) (float64, error) {
	if value == "" {
		return 0, &FieldError{Field: field, Message: MessageRequired}
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || !mathutil.IsFinite(parsed) {
		return 0, &FieldError{Field: field, Message: "Enter a valid number"}
	}
	if parsed <= 0 {
		return 0, &FieldError{Field: field, Message: "Must be greater than zero"}
	}
	return parsed, nil
}

// FieldErrors flattens an error returned by ParseForm into a map of field
// name to message. Errors that are not field errors are keyed by "".
func FieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := make(map[string]string)
	for _, e := range multierr.Errors(err) {
		var fieldErr *FieldError
		if errors.As(e, &fieldErr) {
			out[fieldErr.Field] = fieldErr.Message
			continue
		}
		out[""] = e.Error()
	}
	return out
}
