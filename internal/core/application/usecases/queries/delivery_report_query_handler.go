package queries

import (
	"context"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DeliveryReportQueryHandler computes a single driver's earnings summary.
type DeliveryReportQueryHandler struct {
	orders   OrderReader
	accounts AccountReader
}

// NewDeliveryReportQueryHandler creates a handler for delivery report queries.
func NewDeliveryReportQueryHandler(orders OrderReader, accounts AccountReader) DeliveryReportQueryHandler {
	return DeliveryReportQueryHandler{orders: orders, accounts: accounts}
}

// Handle computes the delivery report.
// Returns errs.ErrObjectNotFound when the user does not exist or is not a driver.
func (h DeliveryReportQueryHandler) Handle(
	ctx context.Context,
	query DeliveryReportQuery,
) (DeliveryReportResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryReportResponse{}, err
	}

	driver, err := h.accounts.Get(ctx, query.DriverID())
	if err != nil {
		return DeliveryReportResponse{}, err
	}
	if driver.Role() != account.RoleDriver {
		return DeliveryReportResponse{}, errs.NewObjectNotFoundError("driver_id", query.DriverID().String())
	}

	period := query.Period()
	completed, err := h.orders.GetCompletedByDriverInRange(ctx, driver.ID(), period.Start(), period.End())
	if err != nil {
		return DeliveryReportResponse{}, errs.NewOperationFailedError("failed to build delivery report", err)
	}

	feesTotal := decimal.Zero
	for _, o := range completed {
		feesTotal = feesTotal.Add(o.DeliveryFee().Amount())
	}

	commission := feesTotal.Mul(driver.CommissionPercentage().Rate()).Div(oneHundred)

	return DeliveryReportResponse{
		Driver: EntityInfo{
			ID:                   driver.ID(),
			Name:                 driver.Name(),
			Phone:                driver.Phone(),
			CommissionPercentage: driver.CommissionPercentage().Rate(),
		},
		Period:            period.String(),
		CompletedOrders:   len(completed),
		DeliveryFeesTotal: feesTotal.Round(2),
		Commission:        commission.Round(2),
		Net:               feesTotal.Sub(commission).Round(2),
	}, nil
}
