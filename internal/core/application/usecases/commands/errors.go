package commands

import (
	"context"
	"errors"
	"log/slog"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// wrapUnexpected passes through errors the caller can act on (validation,
// not-found, forbidden, conflict) and wraps everything else into a single
// operation-failed outcome with a user-facing message. The original error
// stays attached as the cause for logging.
func wrapUnexpected(message string, err error) error {
	if err == nil {
		return nil
	}

	for _, known := range []error{
		errs.ErrObjectNotFound,
		errs.ErrForbidden,
		errs.ErrConcurrentModification,
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	return errs.NewOperationFailedError(message, err)
}

// publishEvent delivers a lifecycle event to the notification dispatcher
// after the transaction committed. Failures are logged and swallowed: the
// state change already happened and must not be reported as failed.
func publishEvent(ctx context.Context, publisher ports.EventPublisher, logger *slog.Logger, event order.Event) {
	if publisher == nil {
		return
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.ErrorContext(ctx, "failed to publish lifecycle event",
			"event", string(event.Name),
			"order_id", event.Order.OrderID.String(),
			"error", err)
	}
}

// publishStatusEvents compares old and new status and fires at most one
// event per transition: accepted when the order landed on Accepted with a
// driver attached, delivered when it landed on Completed.
func publishStatusEvents(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
	oldStatus order.Status,
) {
	switch {
	case aggregate.Status() == order.Accepted && oldStatus != order.Accepted && aggregate.DeliveryBy() != nil:
		publishEvent(ctx, publisher, logger, order.NewOrderAcceptedEvent(aggregate))
	case aggregate.Status() == order.Completed && oldStatus != order.Completed:
		publishEvent(ctx, publisher, logger, order.NewOrderDeliveredEvent(aggregate))
	}
}
