package queries

import (
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAdminReportQueryIsNotConstructed = errors.New(
	"AdminReportQuery must be created via NewAdminReportQuery constructor",
)

// AdminReportQuery requests the platform-wide financial summary for a period.
type AdminReportQuery struct {
	period Period

	guard guard.ConstructorGuard
}

// NewAdminReportQuery creates an admin report query for the given period.
func NewAdminReportQuery(period Period) AdminReportQuery {
	return AdminReportQuery{period: period, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q AdminReportQuery) Validate() error {
	return q.guard.Validate(ErrAdminReportQueryIsNotConstructed)
}

// Period returns the reporting range.
func (q AdminReportQuery) Period() Period {
	return q.period
}

// EntityInfo describes a shop or driver as reports display them.
type EntityInfo struct {
	ID                   kernel.UUID
	Name                 string
	Phone                string
	CommissionPercentage decimal.Decimal
}

// EntityActivity is one shop's or driver's accrued bucket in the admin report.
type EntityActivity struct {
	Info       EntityInfo
	Orders     int
	Amount     decimal.Decimal
	Commission decimal.Decimal
}

// AdminReportResponse is the platform-wide financial summary.
//
// Shop commission accrues on order totals against each shop's current rate;
// driver commission accrues on delivery fees against each driver's current
// rate. Platform revenue is the sum of both. All monetary values are rounded
// to two decimal places; accrual happens at full precision.
type AdminReportResponse struct {
	Period string

	CompletedOrders   int
	OrdersTotal       decimal.Decimal
	DeliveryFeesTotal decimal.Decimal

	ShopCommissionTotal   decimal.Decimal
	DriverCommissionTotal decimal.Decimal
	PlatformRevenue       decimal.Decimal

	ApprovedShops   int64
	ApprovedDrivers int64
	ActiveShops     int
	ActiveDrivers   int

	TopShops   []EntityActivity
	TopDrivers []EntityActivity
}
