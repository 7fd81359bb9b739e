// Package currency provides standardized currency handling across the application.
// All monetary amounts are handled as decimal.Decimal to avoid floating-point errors.
// Display formatting follows the es-CO conventions the product surfaces use:
// whole-peso amounts, dot-grouped thousands, symbol before the amount.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents an ISO 4217 currency code.
type Currency string

// Supported currencies.
const (
	COP Currency = "COP" // Colombian Peso
	USD Currency = "USD" // US Dollar
)

// DefaultCurrency is the currency used when none is specified.
// The product is Colombian; every catalog bound and application amount is in pesos.
const DefaultCurrency = COP

// Info contains display metadata about a currency.
type Info struct {
	Code          Currency
	Name          string
	Symbol        string
	DecimalPlaces int    // Number of decimal places (0 for COP per local convention)
	SymbolBefore  bool   // Whether symbol appears before the amount
	SymbolSpace   bool   // Whether a space separates symbol and amount
	ThousandsSep  string // Thousands separator
	DecimalSep    string // Decimal separator
}

var currencies = map[Currency]Info{
	COP: {Code: COP, Name: "Colombian Peso", Symbol: "$", DecimalPlaces: 0, SymbolBefore: true, SymbolSpace: true, ThousandsSep: ".", DecimalSep: ","},
	USD: {Code: USD, Name: "US Dollar", Symbol: "$", DecimalPlaces: 2, SymbolBefore: true, SymbolSpace: false, ThousandsSep: ",", DecimalSep: "."},
}

// IsValid checks if a currency code is supported.
func IsValid(code string) bool {
	_, ok := currencies[Currency(code)]
	return ok
}

// GetInfo returns metadata for a currency code.
func GetInfo(code Currency) (Info, bool) {
	info, ok := currencies[code]
	return info, ok
}

// Money represents a monetary amount with currency.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney creates a new Money value.
func NewMoney(amount decimal.Decimal, curr Currency) Money {
	if curr == "" {
		curr = DefaultCurrency
	}
	return Money{Amount: amount, Currency: curr}
}

// NewMoneyFromInt creates a Money from a whole-unit integer amount.
func NewMoneyFromInt(amount int64, curr Currency) Money {
	return NewMoney(decimal.NewFromInt(amount), curr)
}

// NewMoneyFromString creates a Money from a string value.
func NewMoneyFromString(amount string, curr Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount: %w", err)
	}
	return NewMoney(d, curr), nil
}

// Format returns the display string for the amount, e.g. "$ 1.000.000" for COP.
// The amount is rounded to the currency's decimal places and grouped per its
// separator conventions.
func (m Money) Format() string {
	info, ok := GetInfo(m.Currency)
	if !ok {
		return fmt.Sprintf("%s %s", m.Amount.StringFixed(2), m.Currency)
	}

	rounded := m.Amount.Round(int32(info.DecimalPlaces))
	body := group(rounded.StringFixed(int32(info.DecimalPlaces)), info)

	sep := ""
	if info.SymbolSpace {
		sep = " "
	}
	if info.SymbolBefore {
		return info.Symbol + sep + body
	}
	return body + sep + info.Symbol
}

// FormatCOP formats a peso amount for display, zero fractional digits.
// This is the formatter validation messages and simulations use.
func FormatCOP(amount decimal.Decimal) string {
	return NewMoney(amount, COP).Format()
}

// FormatCOPInt formats a whole-peso integer amount for display.
func FormatCOPInt(amount int64) string {
	return FormatCOP(decimal.NewFromInt(amount))
}

// group inserts the currency's thousands separator into a fixed-point decimal
// string and swaps the fractional separator.
func group(s string, info Info) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(info.ThousandsSep)
		}
		b.WriteRune(r)
	}

	out := b.String()
	if fracPart != "" {
		out += info.DecimalSep + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
