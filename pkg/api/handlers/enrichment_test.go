package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/enttest"
	"github.com/promarkhq/marketingdb/pkg/cache"
	"github.com/promarkhq/marketingdb/pkg/enrich"
	"github.com/promarkhq/marketingdb/pkg/jobs"

	_ "github.com/mattn/go-sqlite3"
)

// noopEnricher returns empty findings for every contact.
type noopEnricher struct{}

func (noopEnricher) Enrich(_ context.Context, fields enrich.ContactFields) *enrich.Result {
	return &enrich.Result{Original: fields}
}

func setupEnrichmentHandler(t *testing.T, name string) (*EnrichmentHandler, *ent.Client, *cache.Client) {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+name+"?mode=memory&cache=shared&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	redisClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { redisClient.Close() })

	handler := NewEnrichmentHandler(client, redisClient, noopEnricher{}, nil,
		jobs.SchedulerConfig{Concurrency: 1}, nil, nil)
	return handler, client, redisClient
}

func TestEnrichmentHandler_StartEnrichment(t *testing.T) {
	t.Run("Success - pending batch accepted", func(t *testing.T) {
		handler, client, _ := setupEnrichmentHandler(t, "enrich_start")
		e := echo.New()

		batch := client.EnrichmentBatch.Create().
			SetName("run me").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(0).
			SetStatus(enrichmentbatch.StatusPending).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.StartEnrichment(c))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("Failure - non-pending batch conflicts", func(t *testing.T) {
		handler, client, _ := setupEnrichmentHandler(t, "enrich_start_conflict")
		e := echo.New()

		batch := client.EnrichmentBatch.Create().
			SetName("already done").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(0).
			SetStatus(enrichmentbatch.StatusCompleted).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.StartEnrichment(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		handler, _, _ := setupEnrichmentHandler(t, "enrich_start_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.StartEnrichment(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Failure - enrichment not configured", func(t *testing.T) {
		client := enttest.Open(t, "sqlite3", "file:enrich_start_unconf?mode=memory&cache=shared&_fk=1")
		t.Cleanup(func() { client.Close() })
		handler := NewEnrichmentHandler(client, nil, nil, nil, jobs.SchedulerConfig{}, nil, nil).
			WithEnricherError(enrich.ErrMissingSearchKey)
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodPost, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, handler.StartEnrichment(c))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), enrich.ErrMissingSearchKey.Error())
	})
}

func TestEnrichmentHandler_GetProgress(t *testing.T) {
	t.Run("Success - cache snapshot preferred when ahead", func(t *testing.T) {
		handler, client, redisClient := setupEnrichmentHandler(t, "enrich_progress")
		e := echo.New()
		ctx := context.Background()

		batch := client.EnrichmentBatch.Create().
			SetName("in flight").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(100).
			SetProcessedCount(10).
			SetSucceededCount(8).
			SetFailedCount(2).
			SetStatus(enrichmentbatch.StatusProcessing).
			SetStartedAt(time.Now().Add(-time.Minute)).
			SaveX(ctx)

		snap := jobs.ProgressSnapshot{
			BatchID:   batch.ID,
			Total:     100,
			Processed: 30,
			Succeeded: 25,
			Failed:    5,
			UpdatedAt: time.Now(),
		}
		data, err := json.Marshal(snap)
		require.NoError(t, err)
		require.NoError(t, redisClient.Set(ctx, jobs.ProgressKey(batch.ID), string(data), time.Hour))

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.GetProgress(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(30), resp["processed"])
		assert.Equal(t, float64(25), resp["succeeded"])
		assert.Contains(t, resp, "eta_seconds")
	})

	t.Run("Success - store row serves when no snapshot", func(t *testing.T) {
		handler, client, _ := setupEnrichmentHandler(t, "enrich_progress_db")
		e := echo.New()

		batch := client.EnrichmentBatch.Create().
			SetName("finished").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(5).
			SetProcessedCount(5).
			SetSucceededCount(5).
			SetStatus(enrichmentbatch.StatusCompleted).
			SaveX(context.Background())

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues(strconv.Itoa(batch.ID))

		require.NoError(t, handler.GetProgress(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, float64(5), resp["processed"])
		// Completed batches carry no ETA.
		assert.NotContains(t, resp, "eta_seconds")
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		handler, _, _ := setupEnrichmentHandler(t, "enrich_progress_missing")
		e := echo.New()

		c, rec := newJSONContext(e, http.MethodGet, "/", "")
		c.SetParamNames("id")
		c.SetParamValues("9999")

		require.NoError(t, handler.GetProgress(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEnrichmentHandler_GetStats(t *testing.T) {
	handler, client, _ := setupEnrichmentHandler(t, "enrich_stats")
	e := echo.New()
	ctx := context.Background()

	batch := client.EnrichmentBatch.Create().
		SetName("stats").
		SetOwnerEmail("owner@example.com").
		SetTotalCount(0).
		SetStatus(enrichmentbatch.StatusCompleted).
		SaveX(ctx)

	t.Run("Success - overall stats on empty store", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/", "")

		require.NoError(t, handler.GetStats(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var stats jobs.EnrichmentStats
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Zero(t, stats.TotalContacts)
	})

	t.Run("Success - batch scoped stats", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/?batch_id="+strconv.Itoa(batch.ID), "")

		require.NoError(t, handler.GetStats(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Failure - bad batch id", func(t *testing.T) {
		c, rec := newJSONContext(e, http.MethodGet, "/?batch_id=abc", "")

		require.NoError(t, handler.GetStats(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
