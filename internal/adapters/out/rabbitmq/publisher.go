package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"backoffice/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

const notificationsExchange = "notifications_fanout"

// EventPublisher sends order lifecycle events to the notification exchange.
type EventPublisher struct {
	conn Connection
}

// NewEventPublisher creates a publisher on top of an established connection.
func NewEventPublisher(conn Connection) *EventPublisher {
	return &EventPublisher{conn: conn}
}

// notificationMessage is the wire format the dispatcher consumes.
type notificationMessage struct {
	Name         string         `json:"name"`
	TargetRole   int            `json:"target_role"`
	TargetUserID *string        `json:"target_user_id,omitempty"`
	Title        string         `json:"title"`
	Message      string         `json:"message"`
	Notifiable   *notifiableRef `json:"notifiable,omitempty"`
	Order        orderMessage   `json:"order"`
	OccurredAt   time.Time      `json:"occurred_at"`
}

type notifiableRef struct {
	Kind int    `json:"kind"`
	ID   string `json:"id"`
}

type orderMessage struct {
	OrderID         string  `json:"order_id"`
	CustomerName    string  `json:"customer_name"`
	CustomerAddress string  `json:"customer_address"`
	DeliveryFee     string  `json:"delivery_fee"`
	Total           string  `json:"total"`
	Status          int     `json:"status"`
	DeliveryByID    *string `json:"delivery_by_id,omitempty"`
	AddedByID       *string `json:"added_by_id,omitempty"`
}

// Publish serializes the event and sends it to the fanout exchange.
// The caller treats failures as fire-and-forget; this method just reports them.
func (p *EventPublisher) Publish(_ context.Context, event order.Event) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(notificationsExchange, "fanout", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(toMessage(event))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = ch.Publish(notificationsExchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

func toMessage(event order.Event) notificationMessage {
	msg := notificationMessage{
		Name:       string(event.Name),
		TargetRole: int(event.TargetRole),
		Title:      event.Title,
		Message:    event.Message,
		Order: orderMessage{
			OrderID:         event.Order.OrderID.String(),
			CustomerName:    event.Order.CustomerName,
			CustomerAddress: event.Order.CustomerAddress,
			DeliveryFee:     event.Order.DeliveryFee,
			Total:           event.Order.Total,
			Status:          int(event.Order.Status),
		},
		OccurredAt: event.OccurredAt,
	}

	if event.TargetUserID != nil {
		id := event.TargetUserID.String()
		msg.TargetUserID = &id
	}
	if event.Notifiable.Kind != order.NotifiableNone {
		msg.Notifiable = &notifiableRef{
			Kind: int(event.Notifiable.Kind),
			ID:   event.Notifiable.ID.String(),
		}
	}
	if event.Order.DeliveryByID != nil {
		id := event.Order.DeliveryByID.String()
		msg.Order.DeliveryByID = &id
	}
	if event.Order.AddedByID != nil {
		id := event.Order.AddedByID.String()
		msg.Order.AddedByID = &id
	}

	return msg
}
