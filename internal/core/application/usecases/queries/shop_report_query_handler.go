package queries

import (
	"context"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ShopReportQueryHandler computes a single shop's sales summary.
type ShopReportQueryHandler struct {
	orders   OrderReader
	accounts AccountReader
}

// NewShopReportQueryHandler creates a handler for shop report queries.
func NewShopReportQueryHandler(orders OrderReader, accounts AccountReader) ShopReportQueryHandler {
	return ShopReportQueryHandler{orders: orders, accounts: accounts}
}

// Handle computes the shop report.
// Returns errs.ErrObjectNotFound when the user does not exist or is not a shop.
func (h ShopReportQueryHandler) Handle(
	ctx context.Context,
	query ShopReportQuery,
) (ShopReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopReportResponse{}, err
	}

	shop, err := h.accounts.Get(ctx, query.ShopID())
	if err != nil {
		return ShopReportResponse{}, err
	}
	if shop.Role() != account.RoleShop {
		return ShopReportResponse{}, errs.NewObjectNotFoundError("shop_id", query.ShopID().String())
	}

	period := query.Period()
	completed, err := h.orders.GetCompletedByShopInRange(ctx, shop.ID(), period.Start(), period.End())
	if err != nil {
		return ShopReportResponse{}, errs.NewOperationFailedError("failed to build shop report", err)
	}

	ordersTotal := decimal.Zero
	feesTotal := decimal.Zero
	for _, o := range completed {
		ordersTotal = ordersTotal.Add(o.Total().Amount())
		feesTotal = feesTotal.Add(o.DeliveryFee().Amount())
	}

	commission := ordersTotal.Mul(shop.CommissionPercentage().Rate()).Div(oneHundred)

	return ShopReportResponse{
		Shop: EntityInfo{
			ID:                   shop.ID(),
			Name:                 shop.Name(),
			Phone:                shop.Phone(),
			CommissionPercentage: shop.CommissionPercentage().Rate(),
		},
		Period:            period.String(),
		CompletedOrders:   len(completed),
		OrdersTotal:       ordersTotal.Round(2),
		DeliveryFeesTotal: feesTotal.Round(2),
		Commission:        commission.Round(2),
		Net:               ordersTotal.Sub(commission).Round(2),
	}, nil
}
