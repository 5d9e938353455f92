package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/pkg/logger"
)

// CronManager manages scheduled maintenance jobs
type CronManager struct {
	cron *cron.Cron
	db   *ent.Client
	log  logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	return &CronManager{
		cron: cron.New(),
		db:   db,
		log:  log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	// Hourly: sweep for state left behind by crashed runs. The same sweep
	// is run at process start; this catches anything that slips through.
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := RecoverStuckBatches(ctx, cm.db, cm.log); err != nil {
			cm.log.Error("recovery sweep failed", "error", err.Error())
		}
	})
	if err != nil {
		return err
	}

	// Daily at 4 AM: log enrichment statistics.
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()

		total, err := cm.db.Contact.Query().Count(ctx)
		if err != nil {
			cm.log.Error("failed to count contacts", "error", err.Error())
			return
		}
		enriched, err := cm.db.Contact.Query().
			Where(contact.StatusEQ(contact.StatusSuccess)).
			Count(ctx)
		if err != nil {
			cm.log.Error("failed to count enriched contacts", "error", err.Error())
			return
		}
		activeBatches, err := cm.db.EnrichmentBatch.Query().
			Where(enrichmentbatch.StatusIn(
				enrichmentbatch.StatusPending,
				enrichmentbatch.StatusProcessing,
			)).
			Count(ctx)
		if err != nil {
			cm.log.Error("failed to count active batches", "error", err.Error())
			return
		}

		cm.log.Info("enrichment statistics",
			"total_contacts", total,
			"enriched_contacts", enriched,
			"active_batches", activeBatches,
		)
	})
	if err != nil {
		return err
	}

	cm.log.Info("cron jobs configured",
		"jobs", "hourly recovery sweep, daily 4AM statistics")
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.cron.Stop()
}
