package commands

import (
	"context"
	"log/slog"
)

// DeleteOrderCommandHandler removes orders. Deleting an order that does not
// exist reports not-found rather than succeeding silently.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "delete_order_command_handler"),
	}
}

// Handle processes the deletion.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wrapUnexpected("failed to delete order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return wrapUnexpected("failed to delete order", err)
	}

	if err := uow.Commit(ctx); err != nil {
		return wrapUnexpected("failed to delete order", err)
	}

	return nil
}
