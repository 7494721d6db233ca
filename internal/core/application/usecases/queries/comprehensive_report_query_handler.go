package queries

import (
	"context"
	"log/slog"

	"backoffice/internal/core/domain/model/account"
	"backoffice/internal/pkg/errs"
)

// ComprehensiveReportQueryHandler composes the admin report with a delivery
// report for every active approved driver and a shop report for every active
// approved shop. A failing per-entity report is logged and skipped; only the
// admin summary is required for the overall response to succeed.
type ComprehensiveReportQueryHandler struct {
	admin      AdminReportQueryHandler
	deliveries DeliveryReportQueryHandler
	shops      ShopReportQueryHandler
	accounts   AccountReader
	logger     *slog.Logger
}

// NewComprehensiveReportQueryHandler creates a handler for comprehensive report queries.
func NewComprehensiveReportQueryHandler(
	admin AdminReportQueryHandler,
	deliveries DeliveryReportQueryHandler,
	shops ShopReportQueryHandler,
	accounts AccountReader,
	logger *slog.Logger,
) ComprehensiveReportQueryHandler {
	return ComprehensiveReportQueryHandler{
		admin:      admin,
		deliveries: deliveries,
		shops:      shops,
		accounts:   accounts,
		logger:     logger.With("component", "comprehensive_report_query_handler"),
	}
}

// Handle computes the comprehensive report for the query's period.
func (h ComprehensiveReportQueryHandler) Handle(
	ctx context.Context,
	query ComprehensiveReportQuery,
) (ComprehensiveReportResponse, error) {
	if err := query.Validate(); err != nil {
		return ComprehensiveReportResponse{}, err
	}

	period := query.Period()

	adminReport, err := h.admin.Handle(ctx, NewAdminReportQuery(period))
	if err != nil {
		return ComprehensiveReportResponse{}, err
	}

	response := ComprehensiveReportResponse{Admin: adminReport}

	drivers, err := h.accounts.ListActiveApproved(ctx, account.RoleDriver)
	if err != nil {
		return ComprehensiveReportResponse{}, errs.NewOperationFailedError("failed to build comprehensive report", err)
	}

	for _, driver := range drivers {
		subQuery, queryErr := NewDeliveryReportQuery(driver.ID(), period)
		if queryErr != nil {
			h.logger.WarnContext(ctx, "skipping delivery sub-report",
				"driver_id", driver.ID().String(), "error", queryErr)
			continue
		}

		report, reportErr := h.deliveries.Handle(ctx, subQuery)
		if reportErr != nil {
			h.logger.WarnContext(ctx, "skipping delivery sub-report",
				"driver_id", driver.ID().String(), "error", reportErr)
			continue
		}
		response.Deliveries = append(response.Deliveries, report)
	}

	shops, err := h.accounts.ListActiveApproved(ctx, account.RoleShop)
	if err != nil {
		return ComprehensiveReportResponse{}, errs.NewOperationFailedError("failed to build comprehensive report", err)
	}

	for _, shop := range shops {
		subQuery, queryErr := NewShopReportQuery(shop.ID(), period)
		if queryErr != nil {
			h.logger.WarnContext(ctx, "skipping shop sub-report",
				"shop_id", shop.ID().String(), "error", queryErr)
			continue
		}

		report, reportErr := h.shops.Handle(ctx, subQuery)
		if reportErr != nil {
			h.logger.WarnContext(ctx, "skipping shop sub-report",
				"shop_id", shop.ID().String(), "error", reportErr)
			continue
		}
		response.Shops = append(response.Shops, report)
	}

	return response, nil
}
