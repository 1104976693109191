package jobs

import (
	"context"
	"log/slog"

	"lastmile/internal/core/application/usecases/queries"
	"lastmile/internal/core/domain/model/shipment"
	"lastmile/internal/core/domain/model/user"

	"github.com/robfig/cron/v3"
)

// StatisticsReader answers the statistics query.
// queries.GetStatisticsQueryHandler satisfies it.
type StatisticsReader interface {
	Handle(ctx context.Context, query queries.GetStatisticsQuery) (queries.Statistics, error)
}

// StatisticsReportJob logs shipment counts on a cron schedule.
// It reads as the system principal, so the report is subject to the same
// access policy as GET /stats.
type StatisticsReportJob struct {
	handler  StatisticsReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStatisticsReportJob creates a job running on schedule, a standard
// five-field cron expression or a descriptor such as "@every 1m".
func NewStatisticsReportJob(handler StatisticsReader, schedule string, logger *slog.Logger) *StatisticsReportJob {
	return &StatisticsReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "statistics_report_job"),
	}
}

// Start schedules the report. An invalid schedule is returned unchanged from
// the cron parser.
func (j *StatisticsReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Statistics report job started", "schedule", j.schedule)
	return nil
}

// Run produces one report.
func (j *StatisticsReportJob) Run(ctx context.Context) {
	stats, err := j.handler.Handle(ctx, queries.NewGetStatisticsQuery(user.System))
	if err != nil {
		j.logger.ErrorContext(ctx, "Statistics report job failed", "error", err)
		return
	}

	byStatus := make([]any, 0, len(stats.ByStatus))
	for _, status := range shipment.AllStatuses() {
		if count, ok := stats.ByStatus[status]; ok {
			byStatus = append(byStatus, slog.Int(status.String(), count))
		}
	}

	j.logger.InfoContext(ctx, "Shipment statistics",
		"total_shipments", stats.Total,
		slog.Group("by_status", byStatus...),
	)
}

// Stop stops the statistics report job and waits for a running report.
func (j *StatisticsReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Statistics report job stopped")
}
