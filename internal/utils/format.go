package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatThousands renders n with comma thousands separators, e.g. 1234567
// becomes "1,234,567".
func FormatThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}

	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)

	result := strings.Join(groups, ",")
	if negative {
		result = "-" + result
	}
	return result
}

// FormatCurrency renders a revenue amount as a currency string with no
// decimal places and thousands separators, e.g. "$1,234,568".
func FormatCurrency(d decimal.Decimal) string {
	return "$" + FormatThousands(d.Round(0).IntPart())
}

// FormatRating renders a rating with fixed two-decimal precision.
func FormatRating(rating float64) string {
	return fmt.Sprintf("%.2f", rating)
}
