package kernel

import (
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrPercentageIsNotConstructed is returned when a Percentage instance was not
// created through one of the constructor functions.
var ErrPercentageIsNotConstructed = errs.NewValueIsRequiredError("Percentage must be created via NewPercentage or ZeroPercentage")

var maxPercentage = decimal.NewFromInt(100)

// Percentage is an immutable commission rate in the range [0, 100].
// Rates are snapshotted onto orders at computation time, so a Percentage is
// a plain value with no reference back to the user it came from.
type Percentage struct {
	rate decimal.Decimal

	guard guard.ConstructorGuard
}

// ZeroPercentage returns a constructed zero rate. Users without a configured
// commission rate are treated as 0.
func ZeroPercentage() Percentage {
	return Percentage{
		rate:  decimal.Zero,
		guard: guard.NewConstructorGuard(),
	}
}

// NewPercentage creates a Percentage from a decimal rate.
// Rates outside [0, 100] are rejected.
func NewPercentage(rate decimal.Decimal) (Percentage, error) {
	if rate.IsNegative() || rate.GreaterThan(maxPercentage) {
		return Percentage{}, errs.NewValueIsOutOfRangeError("percentage", rate.String(), "0", "100")
	}

	return Percentage{
		rate:  rate,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// PercentageFromString parses a decimal string such as "10.50" into a Percentage.
func PercentageFromString(s string) (Percentage, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return Percentage{}, errs.NewValueIsInvalidErrorWithCause("percentage", err)
	}
	return NewPercentage(rate)
}

// Validate ensures the Percentage was created through a constructor.
func (p Percentage) Validate() error {
	return p.guard.Validate(ErrPercentageIsNotConstructed)
}

// Rate returns the rate as a decimal in [0, 100].
func (p Percentage) Rate() decimal.Decimal {
	return p.rate
}

// IsEqual compares two rates by value.
func (p Percentage) IsEqual(other Percentage) bool {
	return p.rate.Equal(other.rate)
}

// String returns the rate rounded to two decimal places.
func (p Percentage) String() string {
	return p.rate.Round(2).StringFixed(2)
}
