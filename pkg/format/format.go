// Package format holds the small display helpers the admin reports use.
package format

import (
	"fmt"
	"strings"
)

// Money renders an amount with space-grouped thousands and the currency
// appended, e.g. 1234567 FC → "1 234 567 FC". Fractions are dropped: the
// historical tariffs are whole units.
func Money(amount float64, currency string) string {
	n := int64(amount)
	neg := n < 0
	if neg {
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := strings.Join(groups, " ")
	if neg {
		out = "-" + out
	}
	if currency != "" {
		out += " " + currency
	}
	return out
}

// Duration renders a whole number of hours as a compact day/hour string:
// 5 → "5h", 48 → "2d", 50 → "2d 2h".
func Duration(hours int) string {
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}
	days := hours / 24
	rest := hours % 24
	if rest == 0 {
		return fmt.Sprintf("%dd", days)
	}
	return fmt.Sprintf("%dd %dh", days, rest)
}
