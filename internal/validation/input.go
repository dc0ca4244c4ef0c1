// Package validation holds input validators shared by the interactive
// prompts and the flag-driven command paths. Validators use the
// survey-compatible func(any) error shape or the func(string) error shape
// huh expects.
package validation

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/tally/internal/model"
	"github.com/hance08/tally/internal/money"
)

const MaxNameLen = 100

// ValidateAccountName checks a single path segment (not a full name).
func ValidateAccountName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("account name must be a string")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}
	if strings.Contains(name, model.FullNameSep) {
		return fmt.Errorf("account name cannot contain %q", model.FullNameSep)
	}
	if len(name) > MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", MaxNameLen)
	}
	return nil
}

// ValidateCurrency accepts a 3-letter commodity mnemonic; empty means "use
// the default".
func ValidateCurrency(val any) error {
	currency, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		return nil
	}
	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}
	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}
	return nil
}

// ValidateDate checks the ledger's YYYY-MM-DD layout; empty means "today".
func ValidateDate(date string) error {
	if strings.TrimSpace(date) == "" {
		return nil
	}
	if _, err := time.Parse(model.DateFormat, date); err != nil {
		return fmt.Errorf("date must be a valid YYYY-MM-DD calendar date")
	}
	return nil
}

// AmountValidator builds a huh validator for decimal input at a commodity's
// fraction. Empty input is allowed and decodes as zero.
func AmountValidator(fraction int64) func(string) error {
	return func(s string) error {
		if _, err := money.Decode(s, fraction); err != nil {
			return fmt.Errorf("invalid amount (e.g. 12.34)")
		}
		return nil
	}
}
