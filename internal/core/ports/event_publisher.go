package ports

import (
	"context"

	"backoffice/internal/core/domain/model/order"
)

// EventPublisher is the outbound port to the notification dispatcher.
//
// Publication is fire and forget: command handlers call Publish after the
// state-changing transaction commits, log the returned error if any, and
// never surface it to the caller. At-most-once delivery is acceptable;
// retries, fan-out, and persistence belong to the dispatcher.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
