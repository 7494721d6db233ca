package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDeliveryReportQueryIsNotConstructed = errors.New(
	"DeliveryReportQuery must be created via NewDeliveryReportQuery constructor",
)

// DeliveryReportQuery requests one driver's earnings summary for a period.
type DeliveryReportQuery struct {
	driverID kernel.UUID
	period   Period

	guard guard.ConstructorGuard
}

// NewDeliveryReportQuery creates a delivery report query.
func NewDeliveryReportQuery(driverID kernel.UUID, period Period) (DeliveryReportQuery, error) {
	if err := driverID.Validate(); err != nil {
		return DeliveryReportQuery{}, err
	}

	return DeliveryReportQuery{
		driverID: driverID,
		period:   period,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q DeliveryReportQuery) Validate() error {
	return q.guard.Validate(ErrDeliveryReportQueryIsNotConstructed)
}

// DriverID returns the driver being reported on.
func (q DeliveryReportQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Period returns the reporting range.
func (q DeliveryReportQuery) Period() Period {
	return q.period
}

// DeliveryReportResponse summarizes a driver's completed deliveries.
// Commission applies the driver's current rate to the delivery fee sum;
// net is what remains for the driver.
type DeliveryReportResponse struct {
	Driver EntityInfo
	Period string

	CompletedOrders   int
	DeliveryFeesTotal decimal.Decimal
	Commission        decimal.Decimal
	Net               decimal.Decimal
}
