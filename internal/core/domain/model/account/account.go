// Package account provides the commission-relevant view of a user.
// User lifecycle (registration, approval, availability toggling) is owned by
// an external account service; the core reads accounts as reference data and
// never mutates them.
package account

import (
	"errors"
	"fmt"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount constructor.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount constructor")

// Role identifies what a user does on the platform.
// Values match the persisted role column.
type Role int

const (
	// RoleAdmin operates the back office and may cancel orders.
	RoleAdmin Role = 0

	// RoleDriver accepts and completes orders and pays a commission on
	// delivery fees.
	RoleDriver Role = 1

	// RoleShop creates orders and pays a commission on order totals.
	RoleShop Role = 2

	// RoleOther is a user with no part in the order workflow.
	RoleOther Role = 3
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleAdmin:  "Admin",
		RoleDriver: "Driver",
		RoleShop:   "Shop",
		RoleOther:  "Other",
	}
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable role name, or "Unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Account is a read-only snapshot of a user as the order workflow sees it:
// role, commission rate, and the flags that gate participation. It carries no
// credentials or profile data beyond what notifications and reports display.
type Account struct {
	id                   kernel.UUID
	name                 string
	phone                string
	role                 Role
	commissionPercentage kernel.Percentage
	isActive             bool
	isApproved           bool
	isAvailable          bool

	isConstructed bool
}

// NewAccount creates an account view with validation.
// A missing commission rate must be mapped to kernel.ZeroPercentage by the
// caller (the account store does this for NULL columns).
func NewAccount(
	id kernel.UUID,
	name string,
	phone string,
	role Role,
	commissionPercentage kernel.Percentage,
	isActive, isApproved, isAvailable bool,
) (Account, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
		commissionPercentage.Validate(),
	); err != nil {
		return Account{}, err
	}

	return Account{
		id:                   id,
		name:                 name,
		phone:                phone,
		role:                 role,
		commissionPercentage: commissionPercentage,
		isActive:             isActive,
		isApproved:           isApproved,
		isAvailable:          isAvailable,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Account was created via NewAccount.
func (a Account) Validate() error {
	if !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a Account) Name() string {
	return a.name
}

// Phone returns the contact phone number.
func (a Account) Phone() string {
	return a.phone
}

// Role returns the account's role.
func (a Account) Role() Role {
	return a.role
}

// CommissionPercentage returns the commission rate configured for this user.
func (a Account) CommissionPercentage() kernel.Percentage {
	return a.commissionPercentage
}

// IsActive reports whether the account is active.
func (a Account) IsActive() bool {
	return a.isActive
}

// IsApproved reports whether the account passed back-office approval.
func (a Account) IsApproved() bool {
	return a.isApproved
}

// IsAvailable reports the driver availability flag.
// Meaningful only for RoleDriver; always false for other roles.
func (a Account) IsAvailable() bool {
	return a.isAvailable
}
