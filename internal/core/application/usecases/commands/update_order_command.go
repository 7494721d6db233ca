package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a partial edit of an existing order. Every
// field except the order and acting user is optional: nil means "leave as
// is". A status value routes through the same transition rules as the
// dedicated status command, and a new delivery fee or owner causes the
// commission snapshot to be retaken.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actingUserID kernel.UUID

	customerName    *string
	customerPhone   *string
	customerAddress *string
	deliveryFee     *kernel.Money
	total           *kernel.Money
	status          *order.Status
	addedByID       *kernel.UUID
	notes           *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an order. Optional fields
// are passed as pointers; nil fields stay untouched.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	actingUserID kernel.UUID,
	customerName, customerPhone, customerAddress *string,
	deliveryFee, total *kernel.Money,
	status *order.Status,
	addedByID *kernel.UUID,
	notes *string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		customerAddress: customerAddress,
		notes:           notes,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActingUserID(actingUserID),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setTotal(total),
		cmd.setStatus(status),
		cmd.setAddedByID(addedByID),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActingUserID returns the user performing the edit.
func (c UpdateOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

// CustomerName returns the new customer name, or nil.
func (c UpdateOrderCommand) CustomerName() *string {
	return c.customerName
}

// CustomerPhone returns the new customer phone, or nil.
func (c UpdateOrderCommand) CustomerPhone() *string {
	return c.customerPhone
}

// CustomerAddress returns the new delivery address, or nil.
func (c UpdateOrderCommand) CustomerAddress() *string {
	return c.customerAddress
}

// DeliveryFee returns the new delivery fee, or nil.
func (c UpdateOrderCommand) DeliveryFee() *kernel.Money {
	return c.deliveryFee
}

// Total returns the new order total, or nil.
func (c UpdateOrderCommand) Total() *kernel.Money {
	return c.total
}

// Status returns the requested status transition, or nil.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

// AddedByID returns the new owning user, or nil.
func (c UpdateOrderCommand) AddedByID() *kernel.UUID {
	return c.addedByID
}

// Notes returns the new notes value, or nil.
func (c UpdateOrderCommand) Notes() *string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *UpdateOrderCommand) setActingUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingUserID = id
	return nil
}

func (c *UpdateOrderCommand) setDeliveryFee(fee *kernel.Money) error {
	if fee == nil {
		return nil
	}
	if err := fee.Validate(); err != nil {
		return err
	}
	c.deliveryFee = fee
	return nil
}

func (c *UpdateOrderCommand) setTotal(total *kernel.Money) error {
	if total == nil {
		return nil
	}
	if err := total.Validate(); err != nil {
		return err
	}
	c.total = total
	return nil
}

func (c *UpdateOrderCommand) setStatus(s *order.Status) error {
	if s == nil {
		return nil
	}
	if err := s.Validate(); err != nil {
		return err
	}
	c.status = s
	return nil
}

func (c *UpdateOrderCommand) setAddedByID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("added_by_id", err)
	}
	c.addedByID = id
	return nil
}
