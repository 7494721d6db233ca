package queries

import (
	"errors"

	"backoffice/internal/pkg/guard"
)

var ErrComprehensiveReportQueryIsNotConstructed = errors.New(
	"ComprehensiveReportQuery must be created via NewComprehensiveReportQuery constructor",
)

// ComprehensiveReportQuery requests the full back-office report: the admin
// summary plus a per-entity report for every active approved driver and shop.
type ComprehensiveReportQuery struct {
	period Period

	guard guard.ConstructorGuard
}

// NewComprehensiveReportQuery creates a comprehensive report query.
func NewComprehensiveReportQuery(period Period) ComprehensiveReportQuery {
	return ComprehensiveReportQuery{period: period, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ComprehensiveReportQuery) Validate() error {
	return q.guard.Validate(ErrComprehensiveReportQueryIsNotConstructed)
}

// Period returns the reporting range.
func (q ComprehensiveReportQuery) Period() Period {
	return q.period
}

// ComprehensiveReportResponse bundles the admin summary with per-entity
// reports. Entities whose sub-report failed are omitted.
type ComprehensiveReportResponse struct {
	Admin      AdminReportResponse
	Deliveries []DeliveryReportResponse
	Shops      []ShopReportResponse
}
