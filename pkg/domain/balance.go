package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateOnly truncates a timestamp to its calendar date in UTC, the only
// granularity snapshots carry.
func DateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MaxBalanceAmount bounds snapshot amounts to what NUMERIC(15,2) can hold.
var MaxBalanceAmount = decimal.RequireFromString("999999999999.99")

// ValidateAmount checks a parsed snapshot amount against the storage bounds.
func ValidateAmount(amount decimal.Decimal) error {
	ve := &ValidationError{}
	if amount.Abs().GreaterThan(MaxBalanceAmount) {
		ve.Add("amount", "amount must be between -999999999999.99 and 999999999999.99")
	}
	return ve.AsErr()
}

// ParseAmount parses a decimal snapshot amount and validates its bounds. All
// violations are reported through a ValidationError.
func ParseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		ve := &ValidationError{}
		ve.Add("amount", "amount must be a decimal number")
		return decimal.Zero, ve
	}
	if err := ValidateAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount.Round(2), nil
}
