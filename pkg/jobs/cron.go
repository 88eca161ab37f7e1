package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron     *cron.Cron
	appCheck *AppCheck
	schedule string
	logger   logger.Logger
}

// NewCronManager creates a new cron manager running appCheck on schedule
func NewCronManager(appCheck *AppCheck, schedule string, log logger.Logger) *CronManager {
	return &CronManager{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		appCheck: appCheck,
		schedule: schedule,
		logger:   log.With("component", "cron"),
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	_, err := cm.cron.AddFunc(cm.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		// Run logs its own outcome
		_, _ = cm.appCheck.Run(ctx)
	})
	if err != nil {
		return fmt.Errorf("invalid app check schedule %q: %w", cm.schedule, err)
	}

	cm.logger.Info("cron jobs configured", "app_check", cm.schedule)
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the scheduler and waits for running jobs up to ctx's deadline
func (cm *CronManager) Stop(ctx context.Context) {
	cm.logger.Info("stopping cron scheduler")
	select {
	case <-cm.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Entries returns the number of scheduled jobs
func (cm *CronManager) Entries() int {
	return len(cm.cron.Entries())
}
