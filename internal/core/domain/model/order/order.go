package order

import (
	"errors"
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriversOnly is the forbidden reason for a non-driver trying to accept.
	ErrDriversOnly = errs.NewForbiddenError("only drivers can accept orders")

	// ErrDriverBusy is the forbidden reason for an unavailable driver.
	ErrDriverBusy = errs.NewForbiddenError("driver is busy and cannot accept orders")

	// ErrAdminsOnly is the forbidden reason for a non-admin trying to cancel.
	ErrAdminsOnly = errs.NewForbiddenError("only administrators can cancel orders")
)

// Order is the aggregate root of the delivery workflow. It carries the
// customer contact details, the money amounts, the status machine, and the
// commission snapshot taken when the money amounts were last set.
//
// Invariants:
//   - delivery fee and total are non-negative
//   - applicationFee equals the delivery fee times the snapshotted rate,
//     rounded to two decimal places, at the moment the snapshot was taken
//   - the snapshot never changes when a user's live rate changes later
//   - status transitions follow the Status state machine
//   - a terminal order (Cancelled, Completed) never changes status again
type Order struct {
	id              kernel.UUID
	customerName    string
	customerPhone   string
	customerAddress string

	deliveryFee kernel.Money
	total       kernel.Money

	status Status

	// addedByID is the shop that created the order (nil if the creator was removed).
	addedByID *kernel.UUID

	// deliveryByID is the driver who accepted the order (nil until accepted).
	deliveryByID *kernel.UUID

	// applicationPercentage and applicationFee are the commission snapshot.
	applicationPercentage kernel.Percentage
	applicationFee        kernel.Money

	notes string

	// version guards concurrent read-modify-write cycles in the repository.
	version int64

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with validation.
// The commission snapshot starts at zero; callers take the real snapshot with
// SnapshotCommission before persisting.
func NewOrder(
	id kernel.UUID,
	customerName, customerPhone, customerAddress string,
	deliveryFee, total kernel.Money,
	addedBy kernel.UUID,
	notes string,
) (*Order, error) {
	now := time.Now().UTC()
	order := &Order{
		status:                Pending,
		applicationPercentage: kernel.ZeroPercentage(),
		applicationFee:        kernel.ZeroMoney(),
		notes:                 notes,
		version:               1,
		createdAt:             now,
		updatedAt:             now,
		isConstructed:         true,
	}

	if err := errors.Join(
		order.setID(id),
		order.SetCustomerName(customerName),
		order.SetCustomerPhone(customerPhone),
		order.SetCustomerAddress(customerAddress),
		order.SetDeliveryFee(deliveryFee),
		order.SetTotal(total),
		order.setAddedBy(addedBy),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without re-running the
// creation workflow. Status and snapshot values are taken as stored.
func RestoreOrder(
	id kernel.UUID,
	customerName, customerPhone, customerAddress string,
	deliveryFee, total kernel.Money,
	status Status,
	addedByID, deliveryByID *kernel.UUID,
	applicationPercentage kernel.Percentage,
	applicationFee kernel.Money,
	notes string,
	version int64,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryFee.Validate(),
		total.Validate(),
		status.Validate(),
		applicationPercentage.Validate(),
		applicationFee.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:                    id,
		customerName:          customerName,
		customerPhone:         customerPhone,
		customerAddress:       customerAddress,
		deliveryFee:           deliveryFee,
		total:                 total,
		status:                status,
		addedByID:             addedByID,
		deliveryByID:          deliveryByID,
		applicationPercentage: applicationPercentage,
		applicationFee:        applicationFee,
		notes:                 notes,
		version:               version,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		isConstructed:         true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerPhone returns the customer's phone number.
func (o *Order) CustomerPhone() string {
	return o.customerPhone
}

// CustomerAddress returns the delivery address.
func (o *Order) CustomerAddress() string {
	return o.customerAddress
}

// DeliveryFee returns the fee charged for delivering the order.
func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

// Total returns the order's total value.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AddedBy returns the id of the shop that created the order, or nil.
func (o *Order) AddedBy() *kernel.UUID {
	return o.addedByID
}

// DeliveryBy returns the id of the driver who accepted the order, or nil.
func (o *Order) DeliveryBy() *kernel.UUID {
	return o.deliveryByID
}

// ApplicationPercentage returns the snapshotted commission rate.
func (o *Order) ApplicationPercentage() kernel.Percentage {
	return o.applicationPercentage
}

// ApplicationFee returns the snapshotted platform fee.
func (o *Order) ApplicationFee() kernel.Money {
	return o.applicationFee
}

// Notes returns optional free-form notes.
func (o *Order) Notes() string {
	return o.notes
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// SnapshotCommission stores the commission rate and fee computed for this
// order. Called on creation and on updates that change the delivery fee or
// the owning user; never called on plain status changes, so the snapshot
// stays stable for historical reporting.
func (o *Order) SnapshotCommission(rate kernel.Percentage, fee kernel.Money) error {
	if err := errors.Join(rate.Validate(), fee.Validate()); err != nil {
		return err
	}

	o.applicationPercentage = rate
	o.applicationFee = fee
	return nil
}

// Accept assigns the order to the acting driver and moves it to Accepted.
//
// Preconditions:
//   - actor has role Driver, otherwise ErrDriversOnly
//   - actor is available, otherwise ErrDriverBusy
//   - order is Pending, otherwise the status transition fails
//
// On success the driver becomes the order's delivery user. The checks run
// before any mutation, so a failed accept leaves the order unchanged.
func (o *Order) Accept(actor account.Account) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != account.RoleDriver {
		return ErrDriversOnly
	}
	if !actor.IsAvailable() {
		return ErrDriverBusy
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	actorID := actor.ID()
	o.status = newStatus
	o.deliveryByID = &actorID
	return nil
}

// Complete marks the order as delivered. The order must be Accepted.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel withdraws the order. Only administrators may cancel, and only from
// Pending or Accepted.
func (o *Order) Cancel(actor account.Account) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	if actor.Role() != account.RoleAdmin {
		return ErrAdminsOnly
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ApplyStatus dispatches a requested status value to the matching transition.
// Requesting the current status is rejected, as is a transition back to
// Pending.
func (o *Order) ApplyStatus(newStatus Status, actor account.Account) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	switch newStatus {
	case Accepted:
		return o.Accept(actor)
	case Completed:
		return o.Complete()
	case Cancelled:
		return o.Cancel(actor)
	default:
		return errs.NewValueIsInvalidError("status: orders cannot return to Pending")
	}
}

// SetCustomerName updates the customer name. The name is required.
func (o *Order) SetCustomerName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	o.customerName = name
	return nil
}

// SetCustomerPhone updates the customer phone. The phone is required.
func (o *Order) SetCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	o.customerPhone = phone
	return nil
}

// SetCustomerAddress updates the delivery address. The address is required.
func (o *Order) SetCustomerAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer_address")
	}
	o.customerAddress = address
	return nil
}

// SetDeliveryFee updates the delivery fee. Callers that change the fee must
// retake the commission snapshot afterwards.
func (o *Order) SetDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	o.deliveryFee = fee
	return nil
}

// SetTotal updates the order's total value.
func (o *Order) SetTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	o.total = total
	return nil
}

// SetNotes updates the free-form notes.
func (o *Order) SetNotes(notes string) {
	o.notes = notes
}

// ChangeOwner moves the order to a different creating user. Callers must
// retake the commission snapshot against the new owner's rate afterwards.
func (o *Order) ChangeOwner(addedBy kernel.UUID) error {
	return o.setAddedBy(addedBy)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setAddedBy(addedBy kernel.UUID) error {
	if err := addedBy.Validate(); err != nil {
		return err
	}
	o.addedByID = &addedBy
	return nil
}
