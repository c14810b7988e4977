package scheduler

import (
	"testing"

	"rental-billing-batch/internal/config"
	"rental-billing-batch/internal/jobs"
	"rental-billing-batch/internal/repository/jsonfile"

	"github.com/stretchr/testify/assert"
)

func newRunner(cronSpec string) *jobs.JobRunner {
	cfg := &config.Config{}
	cfg.Scheduler.BillingExport = cronSpec
	source := jsonfile.NewDatasetRepository("./data.json")
	writer := jsonfile.NewReportWriter("./output.json", false)
	return jobs.NewJobRunner(cfg, source, writer)
}

func TestNewScheduler(t *testing.T) {
	t.Run("Registers the billing export", func(t *testing.T) {
		s := NewScheduler(newRunner("0 0 2 * * *"))
		assert.True(t, s.IsRunning())

		s.Start()
		s.Stop()
	})

	t.Run("Invalid cron spec registers nothing", func(t *testing.T) {
		s := NewScheduler(newRunner("not-a-cron-spec"))
		assert.False(t, s.IsRunning())
	})
}
