package commands

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/ports"
)

// ChangeOrderStatusCommandHandler owns the order status workflow.
//
// The transition is applied through the aggregate's state machine, so role
// and availability preconditions run before any mutation. The repository's
// guarded update turns a lost accept race into a conflict error: of two
// drivers accepting the same pending order, exactly one wins.
//
// After the commit the handler publishes at most one lifecycle event per
// call: order accepted when the transition landed on Accepted with a driver
// attached, order delivered when it landed on Completed. Publish failures
// are logged and never change the outcome.
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger.With("component", "change_order_status_command_handler"),
	}
}

// Handle processes the status change and returns the updated order.
func (h *ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, wrapUnexpected("failed to change order status", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.AccountStore().Get(ctx, cmd.ActingUserID())
	if err != nil {
		return nil, wrapUnexpected("failed to load acting user", err)
	}

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, wrapUnexpected("failed to load order", err)
	}

	oldStatus := aggregate.Status()

	if err = aggregate.ApplyStatus(cmd.NewStatus(), actor); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, wrapUnexpected("failed to change order status", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, wrapUnexpected("failed to change order status", err)
	}

	publishStatusEvents(ctx, h.publisher, h.logger, aggregate, oldStatus)

	return aggregate, nil
}
