package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ToMinorUnits converts a major-unit amount (rupees) to the provider's minor unit (paise).
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromMinorUnits is the inverse of ToMinorUnits.
func FromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}

// FormatINR renders an amount with Indian digit grouping, e.g. 1234567.5 -> "Rs. 12,34,567.50".
func FormatINR(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	minor := ToMinorUnits(amount)
	whole := minor / 100
	frac := minor % 100

	s := strconv.FormatInt(whole, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if frac == 0 {
		return fmt.Sprintf("%sRs. %s", sign, s)
	}
	return fmt.Sprintf("%sRs. %s.%02d", sign, s, frac)
}
