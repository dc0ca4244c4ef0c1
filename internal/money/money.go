// Package money converts between human-entered decimal strings and exact
// signed integer counts of a commodity's minor unit. All ledger arithmetic
// happens on int64 minor units; floats never touch an amount.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedAmount reports decimal text that cannot be parsed.
	ErrMalformedAmount = errors.New("malformed amount")
	// ErrInvalidCommodity reports a commodity fraction that is not a
	// positive power of 10. No commodity in this system should ever carry
	// one; hitting this means the upstream snapshot is corrupt.
	ErrInvalidCommodity = errors.New("commodity fraction must be a positive power of 10")
)

// Decimals returns log10(fraction), the number of decimal places a commodity
// renders with.
func Decimals(fraction int64) (int, error) {
	if fraction <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidCommodity, fraction)
	}
	decimals := 0
	for f := fraction; f > 1; f /= 10 {
		if f%10 != 0 {
			return 0, fmt.Errorf("%w: got %d", ErrInvalidCommodity, fraction)
		}
		decimals++
	}
	return decimals, nil
}

// Decode parses a decimal string into minor units, e.g. "12.34" with
// fraction 100 becomes 1234. Grouping commas are stripped, the fractional
// part is padded or truncated to the commodity's decimals, and an empty
// string decodes to zero. A leading minus on the whole string is
// authoritative: "-0.50" decodes to -50.
func Decode(text string, fraction int64) (int64, error) {
	decimals, err := Decimals(fraction)
	if err != nil {
		return 0, err
	}

	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if s == "" {
		return 0, nil
	}

	negative := false
	switch s[0] {
	case '-':
		negative = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}
	if intPart == "" && fracPart == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, text)
	}
	if intPart == "" {
		intPart = "0"
	}

	// Pad or truncate the fractional digits to exactly the commodity's
	// decimals, so "12.5" and "12.50" both mean 1250 at fraction 100.
	if len(fracPart) < decimals {
		fracPart += strings.Repeat("0", decimals-len(fracPart))
	} else {
		fracPart = fracPart[:decimals]
	}

	major, err := parseDigits(intPart, text)
	if err != nil {
		return 0, err
	}
	var minor int64
	if fracPart != "" {
		minor, err = parseDigits(fracPart, text)
		if err != nil {
			return 0, err
		}
	}

	total := major*fraction + minor
	if negative {
		total = -total
	}
	return total, nil
}

// Encode renders minor units as a decimal string, the inverse of Decode.
// A fraction of 1 renders a bare integer with no decimal point.
func Encode(minor int64, fraction int64) (string, error) {
	decimals, err := Decimals(fraction)
	if err != nil {
		return "", err
	}
	if decimals == 0 {
		return strconv.FormatInt(minor, 10), nil
	}

	sign := ""
	abs := minor
	if minor < 0 {
		sign = "-"
		abs = -abs
	}

	return fmt.Sprintf("%s%d.%0*d", sign, abs/fraction, decimals, abs%fraction), nil
}

func parseDigits(s, original string) (int64, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, original)
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedAmount, original)
	}
	return n, nil
}
