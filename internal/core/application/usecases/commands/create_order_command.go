package commands

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
	"backoffice/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a shop's request to create a new order.
// Carries the customer contact details, the money amounts, and the acting
// user whose commission rate gets snapshotted onto the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("Jane", "0123456789", "12 Side Street",
//	    deliveryFee, total, "ring twice", shopID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName    string
	customerPhone   string
	customerAddress string
	deliveryFee     kernel.Money
	total           kernel.Money
	notes           string
	actingUserID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Customer name, phone, and address are required; money values must be
// constructed (and are therefore non-negative).
func NewCreateOrderCommand(
	customerName, customerPhone, customerAddress string,
	deliveryFee, total kernel.Money,
	notes string,
	actingUserID kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerName(customerName),
		cmd.setCustomerPhone(customerPhone),
		cmd.setCustomerAddress(customerAddress),
		cmd.setDeliveryFee(deliveryFee),
		cmd.setTotal(total),
		cmd.setActingUserID(actingUserID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the customer's phone number.
func (c CreateOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// CustomerAddress returns the delivery address.
func (c CreateOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// DeliveryFee returns the delivery fee.
func (c CreateOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Total returns the order's total value.
func (c CreateOrderCommand) Total() kernel.Money {
	return c.total
}

// Notes returns optional free-form notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// ActingUserID returns the user creating the order.
func (c CreateOrderCommand) ActingUserID() kernel.UUID {
	return c.actingUserID
}

func (c *CreateOrderCommand) setCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.customerName = name
	return nil
}

func (c *CreateOrderCommand) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	c.customerPhone = phone
	return nil
}

func (c *CreateOrderCommand) setCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer_address")
	}
	c.customerAddress = address
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	c.deliveryFee = fee
	return nil
}

func (c *CreateOrderCommand) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	c.total = total
	return nil
}

func (c *CreateOrderCommand) setActingUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.actingUserID = id
	return nil
}
