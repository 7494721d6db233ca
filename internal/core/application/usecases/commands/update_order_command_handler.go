package commands

import (
	"context"
	"errors"
	"log/slog"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/core/domain/services"
	"backoffice/internal/core/ports"
	"backoffice/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies partial edits to an existing order.
//
// When the edit changes the delivery fee or the owning user, the commission
// snapshot is retaken against the owner's current rate; otherwise the
// snapshot stays untouched so historical reporting keeps the values that
// applied when the order was created. A status field routes through the
// aggregate's transition rules and publishes the same lifecycle events as
// the dedicated status command.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CommissionCalculator
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewUpdateOrderCommandHandler creates a handler for order edits.
func NewUpdateOrderCommandHandler(
	uowFactory UoWFactory,
	calculator services.CommissionCalculator,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
		publisher:  publisher,
		logger:     logger.With("component", "update_order_command_handler"),
	}
}

// Handle processes the edit and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, wrapUnexpected("failed to update order", err)
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

	if err = applyFieldEdits(aggregate, cmd); err != nil {
		return nil, err
	}

	if cmd.DeliveryFee() != nil || cmd.AddedByID() != nil {
		if err = h.retakeSnapshot(ctx, uow, aggregate); err != nil {
			return nil, err
		}
	}

	if cmd.Status() != nil && *cmd.Status() != oldStatus {
		if err = aggregate.ApplyStatus(*cmd.Status(), actor); err != nil {
			return nil, err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, wrapUnexpected("failed to update order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, wrapUnexpected("failed to update order", err)
	}

	publishStatusEvents(ctx, h.publisher, h.logger, aggregate, oldStatus)

	return aggregate, nil
}

// retakeSnapshot recomputes the commission against the current owner's live
// rate. An owner that no longer exists contributes a zero rate rather than
// failing the edit.
func (h *UpdateOrderCommandHandler) retakeSnapshot(ctx context.Context, uow UoW, aggregate *order.Order) error {
	rate := kernel.ZeroPercentage()

	if ownerID := aggregate.AddedBy(); ownerID != nil {
		owner, err := uow.AccountStore().Get(ctx, *ownerID)
		switch {
		case err == nil:
			rate = owner.CommissionPercentage()
		case errors.Is(err, errs.ErrObjectNotFound):
			// keep zero rate
		default:
			return wrapUnexpected("failed to load order owner", err)
		}
	}

	fee, err := h.calculator.Fee(aggregate.DeliveryFee(), rate)
	if err != nil {
		return err
	}

	return aggregate.SnapshotCommission(rate, fee)
}

func applyFieldEdits(aggregate *order.Order, cmd UpdateOrderCommand) error {
	if name := cmd.CustomerName(); name != nil {
		if err := aggregate.SetCustomerName(*name); err != nil {
			return err
		}
	}
	if phone := cmd.CustomerPhone(); phone != nil {
		if err := aggregate.SetCustomerPhone(*phone); err != nil {
			return err
		}
	}
	if address := cmd.CustomerAddress(); address != nil {
		if err := aggregate.SetCustomerAddress(*address); err != nil {
			return err
		}
	}
	if fee := cmd.DeliveryFee(); fee != nil {
		if err := aggregate.SetDeliveryFee(*fee); err != nil {
			return err
		}
	}
	if total := cmd.Total(); total != nil {
		if err := aggregate.SetTotal(*total); err != nil {
			return err
		}
	}
	if owner := cmd.AddedByID(); owner != nil {
		if err := aggregate.ChangeOwner(*owner); err != nil {
			return err
		}
	}
	if notes := cmd.Notes(); notes != nil {
		aggregate.SetNotes(*notes)
	}
	return nil
}
