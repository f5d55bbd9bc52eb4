package jobs

import (
	"fmt"
	"log/slog"

	"production/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueDigestJob *OverdueDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueDigestJob: NewOverdueDigestJob(getAllOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDigestJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue digest job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDigestJob.Stop()
}
