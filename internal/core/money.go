package core

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount parses a user-entered Brazilian decimal string ("1.234,56")
// into a float64 amount. A plain dot-decimal string ("1234.56") is also
// accepted so the JSON API does not force locale formatting on clients.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.Contains(s, ",") {
		// Brazilian format: dots are thousand separators.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Round2 rounds a monetary amount to 2 decimal places, halves away from
// zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
