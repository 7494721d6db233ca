package commands

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Looks up the acting user's commission rate, snapshots rate and fee onto the
// new order, persists it in Pending status, and announces it to drivers.
//
// The create is atomic: either the order exists with consistent commission
// fields, or nothing was written. Event publication happens after commit and
// is best effort; it never fails the create.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CommissionCalculator
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	calculator services.CommissionCalculator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_command_handler"),
	}
}

// Handle processes the order creation command and returns the created order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, wrapUnexpected("failed to create order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.AccountStore().Get(ctx, cmd.ActingUserID())
	if err != nil {
		return nil, wrapUnexpected("failed to load acting user", err)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.CustomerAddress(),
		cmd.DeliveryFee(),
		cmd.Total(),
		actor.ID(),
		cmd.Notes(),
	)
	if err != nil {
		return nil, err
	}

	rate := actor.CommissionPercentage()
	fee, err := h.calculator.Fee(cmd.DeliveryFee(), rate)
	if err != nil {
		return nil, err
	}

	if err = newOrder.SnapshotCommission(rate, fee); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, wrapUnexpected("failed to create order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, wrapUnexpected("failed to create order", err)
	}

	publishEvent(ctx, h.publisher, h.logger, order.NewOrderCreatedEvent(newOrder))

	return newOrder, nil
}
