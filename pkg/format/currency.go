// Package format renders amounts as locale-aware currency strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// localeCurrencies maps a BCP 47 locale to the currency displayed for it.
var localeCurrencies = map[string]string{
	"en-US": "USD",
	"en-GB": "GBP",
	"en-CA": "CAD",
	"en-AU": "AUD",
	"en-NZ": "NZD",
	"en-IN": "INR",
	"en-ZA": "ZAR",
	"en-SG": "SGD",
	"en-HK": "HKD",
	"en-NG": "NGN",
	"fr-FR": "EUR",
	"fr-CA": "CAD",
	"fr-CH": "CHF",
	"de-DE": "EUR",
	"de-AT": "EUR",
	"de-CH": "CHF",
	"es-ES": "EUR",
	"es-MX": "MXN",
	"es-AR": "ARS",
	"es-CL": "CLP",
	"it-IT": "EUR",
	"ja-JP": "JPY",
	"zh-CN": "CNY",
	"zh-HK": "HKD",
	"zh-TW": "TWD",
	"ko-KR": "KRW",
	"ru-RU": "RUB",
	"pt-BR": "BRL",
	"pt-PT": "EUR",
	"nl-NL": "EUR",
	"nl-BE": "EUR",
	"sv-SE": "SEK",
	"no-NO": "NOK",
	"da-DK": "DKK",
	"fi-FI": "EUR",
	"pl-PL": "PLN",
	"cs-CZ": "CZK",
	"hu-HU": "HUF",
	"tr-TR": "TRY",
	"ar-SA": "SAR",
	"ar-AE": "AED",
	"he-IL": "ILS",
	"th-TH": "THB",
	"ms-MY": "MYR",
	"id-ID": "IDR",
	"vi-VN": "VND",
	"in-IN": "INR",
	"uk-UA": "UAH",
	"ro-RO": "RON",
	"bg-BG": "BGN",
	"el-GR": "EUR",
}

// CurrencyForLocale returns the ISO 4217 code shown for locale, falling
// back to constants.DefaultCurrency.
func CurrencyForLocale(locale string) string {
	normalized := normalizeLocale(locale)
	if code, ok := localeCurrencies[normalized]; ok {
		return code
	}
	if tag, err := language.Parse(normalized); err == nil {
		if code, ok := localeCurrencies[tag.String()]; ok {
			return code
		}
	}
	return constants.DefaultCurrency
}

// Formatter formats amounts for one locale and currency.
type Formatter struct {
	locale  string
	tag     language.Tag
	unit    currency.Unit
	scale   int
	printer *message.Printer
}

// NewFormatter creates a Formatter for locale. Unknown or malformed locales
// fall back to constants.DefaultLocale; the currency follows the locale
// table.
func NewFormatter(locale string) *Formatter {
	normalized := normalizeLocale(locale)
	tag, err := language.Parse(normalized)
	if err != nil || normalized == "" {
		normalized = constants.DefaultLocale
		tag = language.MustParse(constants.DefaultLocale)
	}

	unit, err := currency.ParseISO(CurrencyForLocale(normalized))
	if err != nil {
		unit = currency.MustParseISO(constants.DefaultCurrency)
	}
	scale, _ := currency.Standard.Rounding(unit)

	return &Formatter{
		locale:  normalized,
		tag:     tag,
		unit:    unit,
		scale:   scale,
		printer: message.NewPrinter(tag),
	}
}

// Locale returns the locale the formatter was resolved to.
func (f *Formatter) Locale() string {
	return f.locale
}

// Currency returns the ISO 4217 code of the formatter's currency.
func (f *Formatter) Currency() string {
	return f.unit.String()
}

// Symbol returns the display symbol for the currency, e.g. "£".
func (f *Formatter) Symbol() string {
	return strings.TrimSpace(f.printer.Sprint(currency.Symbol(f.unit)))
}

// Format returns amount rounded to the currency's minor unit, grouped for
// the locale and prefixed with the currency symbol (e.g. "-£1,234.56").
func (f *Formatter) Format(amount float64) string {
	number := f.Number(amount)
	if strings.HasPrefix(number, "-") {
		return "-" + f.Symbol() + strings.TrimPrefix(number, "-")
	}
	return f.Symbol() + number
}

// Number returns amount rounded to the currency's minor unit and grouped
// for the locale, without a symbol.
func (f *Formatter) Number(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Sprint(amount)
	}
	rounded := decimal.NewFromFloat(amount).Round(int32(f.scale)).InexactFloat64()
	if rounded == 0 {
		rounded = 0 // drop negative zero
	}
	return f.printer.Sprintf(fmt.Sprintf("%%.%df", f.scale), rounded)
}

// normalizeLocale accepts POSIX-style tags such as "en_GB.UTF-8".
func normalizeLocale(locale string) string {
	trimmed := strings.TrimSpace(locale)
	if idx := strings.IndexAny(trimmed, ".@"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.ReplaceAll(trimmed, "_", "-")
}
