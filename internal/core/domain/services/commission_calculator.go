// Package services contains stateless domain services that implement business
// logic spanning value objects without belonging to a single aggregate.
package services

import (
	"backoffice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// CommissionCalculator computes the platform fee owed on a monetary amount.
//
// The calculation is pure: fee = round(base × rate / 100, 2) with half-up
// rounding. Validation of base and rate happens in their constructors, so the
// calculator only rejects unconstructed inputs; it never clamps.
//
// Example:
//
//	calc := services.NewCommissionCalculator()
//	fee, err := calc.Fee(deliveryFee, shop.CommissionPercentage())
//	if err != nil {
//	    return err
//	}
//	// fee is the amount the platform keeps
type CommissionCalculator struct{}

// NewCommissionCalculator creates a new CommissionCalculator instance.
func NewCommissionCalculator() CommissionCalculator {
	return CommissionCalculator{}
}

// Fee returns the platform fee for the given base amount and commission rate,
// rounded half-up to two decimal places. Deterministic and side-effect free;
// for any rate within [0, 100] the fee never exceeds the base.
func (c CommissionCalculator) Fee(base kernel.Money, rate kernel.Percentage) (kernel.Money, error) {
	if err := base.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := rate.Validate(); err != nil {
		return kernel.Money{}, err
	}

	amount := base.Amount().Mul(rate.Rate()).Div(oneHundred).Round(2)
	return kernel.NewMoney(amount)
}
