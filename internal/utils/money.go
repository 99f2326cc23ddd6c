package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatAmount renders a number with Indian digit grouping, e.g.
// 123456.5 -> "1,23,456.50". Whole amounts drop the decimals.
func FormatAmount(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	// Round to paise before splitting so a fraction that rounds up
	// carries into the whole part.
	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	frac := cents % 100

	out := groupIndian(whole)
	if frac > 0 {
		out += fmt.Sprintf(".%02d", frac)
	}
	return sign + out
}

// FormatRupees prefixes the rupee sign; used where unicode is safe
// (JSON payloads, WhatsApp texts). PDF output uses "Rs." instead because
// the built-in PDF fonts have no rupee glyph.
func FormatRupees(amount float64) string {
	if amount < 0 {
		return "-₹" + FormatAmount(-amount)
	}
	return "₹" + FormatAmount(amount)
}

// groupIndian applies lakh/crore digit grouping: last three digits, then
// pairs.
func groupIndian(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}
