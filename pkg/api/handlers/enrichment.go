package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/pkg/cache"
	"github.com/promarkhq/marketingdb/pkg/jobs"
	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/metrics"
)

// EnrichmentHandler starts enrichment runs and serves their progress
type EnrichmentHandler struct {
	client      *ent.Client
	cache       *cache.Client
	enricher    jobs.ContactEnricher
	enricherErr error
	notifier    jobs.Notifier
	cfg         jobs.SchedulerConfig
	metrics     *metrics.Metrics
	log         logger.Logger
}

// NewEnrichmentHandler creates a new enrichment handler
func NewEnrichmentHandler(client *ent.Client, c *cache.Client, enricher jobs.ContactEnricher, notifier jobs.Notifier, cfg jobs.SchedulerConfig, m *metrics.Metrics, log logger.Logger) *EnrichmentHandler {
	if log == nil {
		log = logger.Default()
	}
	return &EnrichmentHandler{
		client:   client,
		cache:    c,
		enricher: enricher,
		notifier: notifier,
		cfg:      cfg,
		metrics:  m,
		log:      log,
	}
}

// WithEnricherError records why the enricher is unavailable, so the
// service-unavailable response can tell the operator what to fix.
func (h *EnrichmentHandler) WithEnricherError(err error) *EnrichmentHandler {
	h.enricherErr = err
	return h
}

// StartEnrichment godoc
// @Summary Start enrichment for a batch
// @Description Kick off an asynchronous enrichment run over the batch's pending contacts
// @Tags enrichment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 202 {object} map[string]interface{} "Run accepted"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 409 {object} map[string]string "Batch not pending"
// @Router /batches/{id}/enrich [post]
func (h *EnrichmentHandler) StartEnrichment(c echo.Context) error {
	ctx := c.Request().Context()

	if h.enricher == nil {
		msg := "Enrichment is not configured"
		if h.enricherErr != nil {
			msg = fmt.Sprintf("%s: %s", msg, h.enricherErr)
		}
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"error": msg,
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid batch ID",
		})
	}

	batch, err := h.client.EnrichmentBatch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Batch not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch batch",
		})
	}
	if batch.Status != enrichmentbatch.StatusPending {
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "Batch is not in pending status",
		})
	}

	if h.metrics != nil {
		h.metrics.BatchesStarted.Inc()
	}

	// Each run gets its own scheduler; its counters belong to the run, not
	// the process. The claim inside Run is conditional, so a racing start
	// loses there even though the status read above passed.
	sched := jobs.NewScheduler(h.client, h.cache, h.enricher, h.cfg, h.log).
		WithNotifier(h.notifier)

	go func() {
		runCtx := context.Background()
		succeeded, failed, err := sched.Run(runCtx, id)
		if err != nil {
			if errors.Is(err, jobs.ErrBatchNotPending) {
				h.log.Warn("enrichment run lost the batch claim", "batch_id", id)
				return
			}
			h.log.Error("enrichment run failed", "batch_id", id, "error", err)
			return
		}
		if h.metrics != nil {
			h.metrics.BatchesCompleted.Inc()
			h.metrics.ContactsEnriched.Add(float64(succeeded))
			h.metrics.ContactsFailed.Add(float64(failed))
		}
	}()

	h.log.Info("enrichment run started", "batch_id", id, "total", batch.TotalCount)

	return c.JSON(http.StatusAccepted, map[string]interface{}{
		"batch_id": id,
		"status":   "processing",
		"total":    batch.TotalCount,
	})
}

// GetProgress godoc
// @Summary Get enrichment progress for a batch
// @Description Current counters and an ETA estimate, served from the cache snapshot when fresh
// @Tags enrichment
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} map[string]interface{} "Progress"
// @Failure 404 {object} map[string]string "Not found"
// @Router /batches/{id}/progress [get]
func (h *EnrichmentHandler) GetProgress(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid batch ID",
		})
	}

	batch, err := h.client.EnrichmentBatch.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Batch not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch batch",
		})
	}

	snap := jobs.ProgressSnapshot{
		BatchID:   batch.ID,
		Total:     batch.TotalCount,
		Processed: batch.ProcessedCount,
		Succeeded: batch.SucceededCount,
		Failed:    batch.FailedCount,
		UpdatedAt: batch.UpdatedAt,
	}

	// The cache snapshot is flushed more often than the batch row; prefer
	// it when it is ahead of the store.
	if h.cache != nil {
		if raw, err := h.cache.Get(ctx, jobs.ProgressKey(id)); err == nil {
			var cached jobs.ProgressSnapshot
			if json.Unmarshal([]byte(raw), &cached) == nil && cached.Processed > snap.Processed {
				snap = cached
			}
		} else if !cache.IsNil(err) {
			h.log.Warn("failed to read progress snapshot", "batch_id", id, "error", err)
		}
	}

	resp := map[string]interface{}{
		"batch_id":   snap.BatchID,
		"status":     batch.Status,
		"total":      snap.Total,
		"processed":  snap.Processed,
		"succeeded":  snap.Succeeded,
		"failed":     snap.Failed,
		"updated_at": snap.UpdatedAt,
	}
	if eta, ok := estimateETA(batch, snap); ok {
		resp["eta_seconds"] = eta
	}

	return c.JSON(http.StatusOK, resp)
}

// GetStats godoc
// @Summary Enrichment statistics
// @Description Success rates over terminal contacts, for one batch or the whole store
// @Tags enrichment
// @Produce json
// @Security BearerAuth
// @Param batch_id query int false "Restrict to one batch"
// @Success 200 {object} jobs.EnrichmentStats "Statistics"
// @Router /enrichment/stats [get]
func (h *EnrichmentHandler) GetStats(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		stats *jobs.EnrichmentStats
		err   error
	)
	if raw := c.QueryParam("batch_id"); raw != "" {
		id, convErr := strconv.Atoi(raw)
		if convErr != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid batch ID",
			})
		}
		stats, err = jobs.BatchStats(ctx, h.client, id)
	} else {
		stats, err = jobs.OverallStats(ctx, h.client)
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to compute statistics",
		})
	}

	return c.JSON(http.StatusOK, stats)
}

// RecoverStuck godoc
// @Summary Run the stuck-state recovery sweep
// @Description Reset contacts stuck in processing and pause their batches; the same sweep runs at boot and hourly
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} jobs.RecoveryResult "Recovery result"
// @Router /admin/recover [post]
func (h *EnrichmentHandler) RecoverStuck(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := jobs.RecoverStuckBatches(ctx, h.client, h.log)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Recovery sweep failed",
		})
	}

	return c.JSON(http.StatusOK, result)
}

// estimateETA projects remaining runtime from the observed per-contact rate.
// It needs a running batch with at least one processed contact.
func estimateETA(batch *ent.EnrichmentBatch, snap jobs.ProgressSnapshot) (float64, bool) {
	if batch.Status != enrichmentbatch.StatusProcessing || batch.StartedAt == nil {
		return 0, false
	}
	if snap.Processed <= 0 || snap.Processed >= snap.Total {
		return 0, false
	}
	elapsed := time.Since(*batch.StartedAt).Seconds()
	if elapsed <= 0 {
		return 0, false
	}
	perContact := elapsed / float64(snap.Processed)
	remaining := float64(snap.Total - snap.Processed)
	return perContact * remaining, true
}
