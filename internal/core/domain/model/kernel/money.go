package kernel

import (
	"fmt"

	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a Money instance was not created
// through one of the constructor functions.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney or MoneyFromString")

// moneyScale is the scale used for persisted and presented monetary values.
const moneyScale = 2

// Money is an immutable non-negative monetary amount backed by an
// arbitrary-precision decimal. Amounts keep their full precision internally;
// rounding to two decimal places happens only through Round2 at the moment a
// value is persisted or presented.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// ZeroMoney returns a constructed Money with amount 0.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// NewMoney creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal string such as "50.00" into a Money value.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Validate ensures the Money value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal amount at full precision.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Round2 returns the amount rounded half-up to two decimal places.
func (m Money) Round2() decimal.Decimal {
	return m.amount.Round(moneyScale)
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Sub returns the difference of two monetary amounts.
// The result may be negative; callers decide whether that is meaningful.
func (m Money) Sub(other Money) decimal.Decimal {
	return m.amount.Sub(other.amount)
}

// IsEqual compares two monetary amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount rounded to two decimal places.
func (m Money) String() string {
	return m.Round2().StringFixed(moneyScale)
}
