package analytics

import (
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// percentOf rounds 100*part/total to the nearest integer, halves going up.
// A zero total yields 0.
func percentOf(part, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}

	return int(part.Mul(hundred).Div(total).Round(0).IntPart())
}

// Humanize turns a record key into a display label: underscores become
// spaces and every word starts upper-cased ("shipping_fees" -> "Shipping Fees").
func Humanize(key string) string {
	runes := []rune(key)
	wordStart := true

	for i, r := range runes {
		if r == '_' {
			runes[i] = ' '
			wordStart = true
			continue
		}

		isWordRune := unicode.IsLetter(r) || unicode.IsDigit(r)
		if wordStart && isWordRune {
			runes[i] = unicode.ToUpper(r)
		}
		wordStart = !isWordRune
	}

	return string(runes)
}

func emptyMetrics() []domain.DerivedMetric {
	return []domain.DerivedMetric{}
}
