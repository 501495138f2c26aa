package util

import (
	"strings"

	"github.com/shopspring/decimal"
)

const groupSize = 3

// FormatMoney renders a decimal amount with two fractional digits and a
// thousands separator, e.g. FormatMoney(d, ",", ".") -> "1,234.50".
func FormatMoney(value decimal.Decimal, thousand, dec string) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	whole := parts[0]

	var groups []string
	for len(whole) > groupSize {
		groups = append([]string{whole[len(whole)-groupSize:]}, groups...)
		whole = whole[:len(whole)-groupSize]
	}
	groups = append([]string{whole}, groups...)

	result := strings.Join(groups, thousand) + dec + parts[1]
	if negative {
		return "-" + result
	}

	return result
}
