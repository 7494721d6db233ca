package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrShopReportQueryIsNotConstructed = errors.New(
	"ShopReportQuery must be created via NewShopReportQuery constructor",
)

// ShopReportQuery requests one shop's sales summary for a period.
type ShopReportQuery struct {
	shopID kernel.UUID
	period Period

	guard guard.ConstructorGuard
}

// NewShopReportQuery creates a shop report query.
func NewShopReportQuery(shopID kernel.UUID, period Period) (ShopReportQuery, error) {
	if err := shopID.Validate(); err != nil {
		return ShopReportQuery{}, err
	}

	return ShopReportQuery{
		shopID: shopID,
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ShopReportQuery) Validate() error {
	return q.guard.Validate(ErrShopReportQueryIsNotConstructed)
}

// ShopID returns the shop being reported on.
func (q ShopReportQuery) ShopID() kernel.UUID {
	return q.shopID
}

// Period returns the reporting range.
func (q ShopReportQuery) Period() Period {
	return q.period
}

// ShopReportResponse summarizes a shop's completed orders.
// Commission applies the shop's current rate to the order total sum; the
// delivery fee sum is informational.
type ShopReportResponse struct {
	Shop   EntityInfo
	Period string

	CompletedOrders   int
	OrdersTotal       decimal.Decimal
	DeliveryFeesTotal decimal.Decimal
	Commission        decimal.Decimal
	Net               decimal.Decimal
}
