package jobs

import (
	"context"
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatusSnapshotJob *OrderStatusSnapshotJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	summaryHandler statusSummaryHandler,
	recorder snapshotRecorder,
	snapshotSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatusSnapshotJob: NewOrderStatusSnapshotJob(summaryHandler, recorder, snapshotSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatusSnapshotJob.Start(); err != nil {
		return fmt.Errorf("failed to start order status snapshot job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs, waiting for in-flight runs until ctx expires.
func (jm *JobManager) StopAll(ctx context.Context) {
	jm.orderStatusSnapshotJob.Stop(ctx)
}
