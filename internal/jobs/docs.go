// Package jobs provides scheduled background tasks for the back office.
//
// Jobs are built on github.com/robfig/cron/v3 and managed through JobManager,
// which offers a unified start/stop interface:
//
//	jobManager := jobs.NewJobManager(adminReportHandler, "0 6 * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// ReportDigestJob runs on a configurable daily schedule and logs the previous
// day's platform financials (completed orders, commission totals, revenue) so
// operators get a digest without opening the reporting endpoints. Failures
// are logged and retried on the next tick; the job never stops the process.
package jobs
