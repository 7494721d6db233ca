package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// ReportDigestJob produces a daily financial digest from the admin report.
// The digest covers the previous day and is emitted to the log for operators.
type ReportDigestJob struct {
	handler  queries.AdminReportQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewReportDigestJob creates a daily report digest job.
// The schedule is a standard 5-field cron expression.
func NewReportDigestJob(
	handler queries.AdminReportQueryHandler,
	schedule string,
	logger *slog.Logger,
) *ReportDigestJob {
	return &ReportDigestJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "report_digest_job"),
	}
}

// Start schedules the digest job.
func (j *ReportDigestJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Report digest job started", "schedule", j.schedule)
	return nil
}

// Stop stops the digest job.
func (j *ReportDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Report digest job stopped")
}

func (j *ReportDigestJob) run() {
	ctx := context.Background()

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	period, err := queries.NewPeriod(&yesterday, &yesterday)
	if err != nil {
		j.logger.ErrorContext(ctx, "Report digest period is invalid", "error", err)
		return
	}

	report, err := j.handler.Handle(ctx, queries.NewAdminReportQuery(period))
	if err != nil {
		j.logger.ErrorContext(ctx, "Report digest failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily report digest",
		"period", report.Period,
		"completed_orders", report.CompletedOrders,
		"orders_total", report.OrdersTotal.StringFixed(2),
		"delivery_fees_total", report.DeliveryFeesTotal.StringFixed(2),
		"shop_commission_total", report.ShopCommissionTotal.StringFixed(2),
		"driver_commission_total", report.DriverCommissionTotal.StringFixed(2),
		"platform_revenue", report.PlatformRevenue.StringFixed(2),
		"active_shops", report.ActiveShops,
		"active_drivers", report.ActiveDrivers,
	)
}
