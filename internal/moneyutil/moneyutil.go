// Package moneyutil formats monetary amounts for invoice documents.
//
// Formatting is keyed by ISO 4217 currency code and never fails: an absent
// or invalid code falls back to USD-style output, and a non-finite amount
// formats as zero. Digit grouping follows the en locale via x/text.
package moneyutil

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is used when the invoice carries no usable currency code.
const DefaultCurrency = "USD"

// symbols maps common currency codes to their display symbol. Codes outside
// this table render as "<CODE> <amount>".
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"NGN": "₦",
	"KRW": "₩",
	"CAD": "CA$",
	"AUD": "A$",
	"BRL": "R$",
	"ZAR": "R",
}

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders an amount in the given currency, e.g. "$1,234.50" or
// "CHF 40.00". Invalid codes format as USD; NaN and infinities format as zero.
func Format(amount float64, code string) string {
	code = Normalize(code)

	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	if sym, ok := symbols[code]; ok {
		if amount < 0 {
			return printer.Sprintf("-%s%.2f", sym, -amount)
		}
		return printer.Sprintf("%s%.2f", sym, amount)
	}
	return printer.Sprintf("%s %.2f", code, amount)
}

// Normalize uppercases a currency code and substitutes DefaultCurrency for
// anything that is not three ASCII letters.
func Normalize(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !isISO4217(code) {
		return DefaultCurrency
	}
	return code
}

func isISO4217(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
