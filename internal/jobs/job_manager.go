package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	statisticsReportJob *StatisticsReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty statsSchedule disables the statistics report.
func NewJobManager(
	statisticsHandler StatisticsReader,
	statsSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if statsSchedule != "" {
		jm.statisticsReportJob = NewStatisticsReportJob(statisticsHandler, statsSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.statisticsReportJob != nil {
		if err := jm.statisticsReportJob.Start(); err != nil {
			return fmt.Errorf("failed to start statistics report job: %w", err)
		}
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.statisticsReportJob != nil {
		jm.statisticsReportJob.Stop()
	}
}
