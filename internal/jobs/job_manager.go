package jobs

import (
	"fmt"
	"log/slog"

	"backoffice/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	reportDigestJob *ReportDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	adminReportHandler queries.AdminReportQueryHandler,
	digestSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		reportDigestJob: NewReportDigestJob(adminReportHandler, digestSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.reportDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start report digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.reportDigestJob.Stop()
}
