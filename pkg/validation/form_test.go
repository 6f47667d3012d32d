package validation

import (
	"testing"

	"github.com/iwvelando/mortgage-calculator/pkg/mortgage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParseFormValid(t *testing.T) {
	input, err := ParseForm(Form{Amount: "200,000", Term: "25", Rate: "5.5%", Type: "repayment"})
	require.NoError(t, err)

	assert.Equal(t, mortgage.LoanInput{Amount: 200000, Rate: 5.5, Term: 25, Type: mortgage.Repayment}, input)
}

func TestParseFormKeepsFractionalRate(t *testing.T) {
	input, err := ParseForm(Form{Amount: "1000", Term: "1", Rate: "0.75", Type: "interest"})
	require.NoError(t, err)

	assert.Equal(t, 0.75, input.Rate)
	assert.Equal(t, mortgage.InterestOnly, input.Type)
}

func TestParseFormEmpty(t *testing.T) {
	_, err := ParseForm(Form{})
	require.Error(t, err)

	assert.Len(t, multierr.Errors(err), 4)
	assert.Equal(t, map[string]string{
		FieldAmount: MessageRequired,
		FieldTerm:   MessageRequired,
		FieldRate:   MessageRequired,
		FieldType:   MessageRequired,
	}, FieldErrors(err))
}

func TestParseFormRejectsUnparseableInsteadOfZero(t *testing.T) {
	tests := []struct {
		name    string
		form    Form
		field   string
		message string
	}{
		{"letters in amount", Form{Amount: "abc", Term: "25", Rate: "5", Type: "repayment"}, FieldAmount, "Enter a valid number"},
		{"zero amount", Form{Amount: "0", Term: "25", Rate: "5", Type: "repayment"}, FieldAmount, "Must be greater than zero"},
		{"negative amount", Form{Amount: "-100", Term: "25", Rate: "5", Type: "repayment"}, FieldAmount, "Must be greater than zero"},
		{"infinite amount", Form{Amount: "Inf", Term: "25", Rate: "5", Type: "repayment"}, FieldAmount, "Enter a valid number"},
		{"NaN rate", Form{Amount: "1000", Term: "25", Rate: "NaN", Type: "repayment"}, FieldRate, "Enter a valid number"},
		{"zero rate", Form{Amount: "1000", Term: "25", Rate: "0", Type: "repayment"}, FieldRate, "Must be greater than zero"},
		{"fractional term", Form{Amount: "1000", Term: "2.5", Rate: "5", Type: "repayment"}, FieldTerm, "Enter a whole number of years"},
		{"zero term", Form{Amount: "1000", Term: "0", Rate: "5", Type: "repayment"}, FieldTerm, "Must be greater than zero"},
		{"term above maximum", Form{Amount: "1000", Term: "101", Rate: "5", Type: "repayment"}, FieldTerm, "Must be 100 years or less"},
		{"huge term", Form{Amount: "1000", Term: "1000000", Rate: "5", Type: "repayment"}, FieldTerm, "Must be 100 years or less"},
		{"term out of int range", Form{Amount: "1000", Term: "99999999999999999999", Rate: "5", Type: "repayment"}, FieldTerm, "Enter a whole number of years"},
		{"unknown type", Form{Amount: "1000", Term: "25", Rate: "5", Type: "balloon"}, FieldType, "Choose Repayment or Interest Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, err := ParseForm(tt.form)
			require.Error(t, err)

			assert.Equal(t, mortgage.LoanInput{}, input)
			assert.Equal(t, map[string]string{tt.field: tt.message}, FieldErrors(err))
		})
	}
}

func TestFieldErrorsNil(t *testing.T) {
	assert.Nil(t, FieldErrors(nil))
}

func TestFieldErrorMessage(t *testing.T) {
	err := &FieldError{Field: FieldRate, Message: MessageRequired}
	assert.Equal(t, "rate: This field is required", err.Error())
}
