package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderintake/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

const (
	orderStatusSnapshotJobName = "order_status_snapshot"
	snapshotTimeout            = 10 * time.Second
)

type statusSummaryHandler interface {
	Handle(
		ctx context.Context,
		query queries.GetOrderStatusSummaryQuery,
	) ([]queries.GetOrderStatusSummaryQueryResponse, error)
}

type snapshotRecorder interface {
	SetOrdersByStatus(counts map[string]int64)
	RecordJobRun(job string, duration time.Duration, success bool)
}

// OrderStatusSnapshotJob periodically publishes how many orders sit in each status.
type OrderStatusSnapshotJob struct {
	handler  statusSummaryHandler
	recorder snapshotRecorder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusSnapshotJob creates the job. schedule accepts six-field cron
// expressions and descriptors such as "@every 30s".
func NewOrderStatusSnapshotJob(
	handler statusSummaryHandler,
	recorder snapshotRecorder,
	schedule string,
	logger *slog.Logger,
) *OrderStatusSnapshotJob {
	return &OrderStatusSnapshotJob{
		handler:  handler,
		recorder: recorder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_snapshot_job"),
	}
}

// Start schedules the job. An invalid schedule is reported here rather than at run time.
func (j *OrderStatusSnapshotJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order status snapshot failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status snapshot job started", "schedule", j.schedule)
	return nil
}

// Run takes one snapshot immediately.
func (j *OrderStatusSnapshotJob) Run(ctx context.Context) error {
	start := time.Now()

	summary, err := j.handler.Handle(ctx, queries.NewGetOrderStatusSummaryQuery())
	if err != nil {
		j.recorder.RecordJobRun(orderStatusSnapshotJobName, time.Since(start), false)
		return err
	}

	counts := make(map[string]int64, len(summary))
	for _, row := range summary {
		counts[row.Status] = row.Count
	}

	j.recorder.SetOrdersByStatus(counts)
	j.recorder.RecordJobRun(orderStatusSnapshotJobName, time.Since(start), true)
	j.logger.DebugContext(ctx, "Order status snapshot taken", "statuses", len(counts))
	return nil
}

// Stop unschedules the job and waits for a running snapshot to finish or ctx to expire.
func (j *OrderStatusSnapshotJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
	j.logger.InfoContext(ctx, "Order status snapshot job stopped")
}
