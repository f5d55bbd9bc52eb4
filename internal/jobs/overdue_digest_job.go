package jobs

import (
	"context"
	"log/slog"

	"production/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueDigestJob logs a daily summary of overdue orders so the team sees
// aging work without opening the dashboard. An order counts as overdue when
// its order date has passed and it is not completed, canceled, or returned.
type OverdueDigestJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueDigestJob creates the digest job. The schedule fires every day
// at 07:00 server time, before the production floor starts.
func NewOverdueDigestJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *OverdueDigestJob {
	return &OverdueDigestJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_digest_job"),
	}
}

// Start schedules the daily digest.
func (j *OverdueDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 7 * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Overdue digest job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue digest job started (daily at 07:00)")
	return nil
}

// Stop stops the digest job.
func (j *OverdueDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue digest job stopped")
}

func (j *OverdueDigestJob) run(ctx context.Context) error {
	query, err := queries.NewGetAllOrdersQuery(queries.OrderFilter{OnlyOverdue: true})
	if err != nil {
		return err
	}

	orders, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	if len(orders) == 0 {
		j.logger.InfoContext(ctx, "No overdue orders")
		return nil
	}

	// The list is sorted newest order date first, so the tail is the worst case.
	oldest := orders[len(orders)-1]

	j.logger.WarnContext(ctx, "Overdue orders digest",
		"count", len(orders),
		"oldest_order", oldest.ExternalID,
		"oldest_order_date", oldest.OrderDate,
	)
	return nil
}
