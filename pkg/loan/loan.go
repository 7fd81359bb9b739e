// Package loan holds the pure payment math for the credit catalog.
//
// The estimate uses a flat-interest model: total interest is a single charge of
// annualRate * years spread evenly over the term. It is intentionally not an
// amortized schedule; the number shown to the applicant is an approximation and
// the formula is a product decision.
package loan

import "github.com/shopspring/decimal"

// AllowedTerms is the fixed set of terms, in months, an applicant can choose.
var AllowedTerms = []int{12, 24, 36, 48, 60, 72}

// IsAllowedTerm reports whether termMonths is one of the selectable terms.
func IsAllowedTerm(termMonths int) bool {
	for _, t := range AllowedTerms {
		if termMonths == t {
			return true
		}
	}
	return false
}

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// EstimateMonthlyPayment returns the estimated monthly installment for a
// requested amount over termMonths at the product's nominal annual rate
// (a percentage, e.g. 1.8 means 1.8%/year).
//
//	totalInterestFraction = (rate / 100) * (term / 12)
//	monthlyPayment        = amount * (1 + totalInterestFraction) / term
//
// termMonths must be positive; callers invoke this only once a term is chosen.
func EstimateMonthlyPayment(amount decimal.Decimal, termMonths int, annualRatePercent decimal.Decimal) decimal.Decimal {
	term := decimal.NewFromInt(int64(termMonths))
	interestFraction := annualRatePercent.Div(hundred).Mul(term.Div(twelve))
	total := amount.Mul(one.Add(interestFraction))
	return total.Div(term)
}
