package order

import (
	"time"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/core/domain/model/kernel"
)

// EventName identifies a lifecycle event published to the notification
// dispatcher. The values match the notification types the dispatcher stores.
type EventName string

const (
	EventOrderCreated   EventName = "order_created"
	EventOrderAccepted  EventName = "order_accepted"
	EventOrderDelivered EventName = "order_delivered"
)

// NotifiableKind discriminates what entity a notification points back to.
type NotifiableKind int

const (
	NotifiableNone NotifiableKind = iota
	NotifiableOrder
	NotifiableComplaint
	NotifiableUser
)

// NotifiableRef is a tagged reference to the entity a notification is about.
// The dispatcher resolves the id against its own lookups based on the kind;
// the core never dereferences it.
type NotifiableRef struct {
	Kind NotifiableKind
	ID   kernel.UUID
}

// NoRef returns an empty reference.
func NoRef() NotifiableRef {
	return NotifiableRef{Kind: NotifiableNone}
}

// OrderRef returns a reference to an order.
func OrderRef(id kernel.UUID) NotifiableRef {
	return NotifiableRef{Kind: NotifiableOrder, ID: id}
}

// ComplaintRef returns a reference to a complaint.
func ComplaintRef(id kernel.UUID) NotifiableRef {
	return NotifiableRef{Kind: NotifiableComplaint, ID: id}
}

// UserRef returns a reference to a user.
func UserRef(id kernel.UUID) NotifiableRef {
	return NotifiableRef{Kind: NotifiableUser, ID: id}
}

// Event is a lifecycle event handed to the notification dispatcher after the
// state change that produced it was committed. Publication is fire and
// forget: the dispatcher owns fan-out, persistence, and retries.
type Event struct {
	Name EventName

	// TargetRole is the audience the dispatcher fans the notification out to.
	TargetRole account.Role

	// TargetUserID narrows the audience to one user when set.
	TargetUserID *kernel.UUID

	Title   string
	Message string

	Notifiable NotifiableRef

	Order OrderPayload

	OccurredAt time.Time
}

// OrderPayload is the order snapshot carried inside an event.
type OrderPayload struct {
	OrderID         kernel.UUID
	CustomerName    string
	CustomerAddress string
	DeliveryFee     string
	Total           string
	Status          Status
	DeliveryByID    *kernel.UUID
	AddedByID       *kernel.UUID
}

func payloadFrom(o *Order) OrderPayload {
	return OrderPayload{
		OrderID:         o.ID(),
		CustomerName:    o.CustomerName(),
		CustomerAddress: o.CustomerAddress(),
		DeliveryFee:     o.DeliveryFee().String(),
		Total:           o.Total().String(),
		Status:          o.Status(),
		DeliveryByID:    o.DeliveryBy(),
		AddedByID:       o.AddedBy(),
	}
}

// NewOrderCreatedEvent announces a new order to all active drivers.
func NewOrderCreatedEvent(o *Order) Event {
	return Event{
		Name:       EventOrderCreated,
		TargetRole: account.RoleDriver,
		Title:      "New order available",
		Message:    "A new order is waiting for a driver: " + o.CustomerAddress(),
		Notifiable: OrderRef(o.ID()),
		Order:      payloadFrom(o),
		OccurredAt: time.Now().UTC(),
	}
}

// NewOrderAcceptedEvent tells the creating shop that a driver took the order.
func NewOrderAcceptedEvent(o *Order) Event {
	return Event{
		Name:         EventOrderAccepted,
		TargetRole:   account.RoleShop,
		TargetUserID: o.AddedBy(),
		Title:        "Order accepted",
		Message:      "A driver accepted the order for " + o.CustomerName(),
		Notifiable:   OrderRef(o.ID()),
		Order:        payloadFrom(o),
		OccurredAt:   time.Now().UTC(),
	}
}

// NewOrderDeliveredEvent tells the creating shop that the order was delivered.
func NewOrderDeliveredEvent(o *Order) Event {
	return Event{
		Name:         EventOrderDelivered,
		TargetRole:   account.RoleShop,
		TargetUserID: o.AddedBy(),
		Title:        "Order delivered",
		Message:      "The order for " + o.CustomerName() + " was delivered",
		Notifiable:   OrderRef(o.ID()),
		Order:        payloadFrom(o),
		OccurredAt:   time.Now().UTC(),
	}
}
