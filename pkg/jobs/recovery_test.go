package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"

	_ "github.com/mattn/go-sqlite3"
)

func TestRecoverStuckBatches(t *testing.T) {
	t.Run("Success - processing state is repaired", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "recover_repair")
		defer cleanup()

		ctx := context.Background()

		// A batch that crashed mid-run: batch and two of its contacts stuck
		// in processing, one already terminal.
		stuck := client.EnrichmentBatch.Create().
			SetName("crashed").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(3).
			SetStatus(enrichmentbatch.StatusProcessing).
			SaveX(ctx)
		for i := 0; i < 2; i++ {
			client.Contact.Create().
				SetFirstName("Stuck").
				SetLastName("Agent").
				SetStatus(contact.StatusProcessing).
				SetBatch(stuck).
				SaveX(ctx)
		}
		client.Contact.Create().
			SetFirstName("Done").
			SetLastName("Agent").
			SetStatus(contact.StatusSuccess).
			SetBatch(stuck).
			SaveX(ctx)

		// A healthy completed batch must be untouched.
		healthy := client.EnrichmentBatch.Create().
			SetName("healthy").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(0).
			SetStatus(enrichmentbatch.StatusCompleted).
			SaveX(ctx)

		result, err := RecoverStuckBatches(ctx, client, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, result.ContactsReset)
		assert.Equal(t, 1, result.BatchesPaused)

		assert.Equal(t, enrichmentbatch.StatusPaused,
			client.EnrichmentBatch.GetX(ctx, stuck.ID).Status)
		assert.Equal(t, enrichmentbatch.StatusCompleted,
			client.EnrichmentBatch.GetX(ctx, healthy.ID).Status)

		pending := client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusPending)).
			CountX(ctx)
		assert.Equal(t, 2, pending)

		// The terminal contact keeps its outcome.
		success := client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusSuccess)).
			CountX(ctx)
		assert.Equal(t, 1, success)
	})

	t.Run("Success - clean store is a no-op", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "recover_noop")
		defer cleanup()

		result, err := RecoverStuckBatches(context.Background(), client, nil)
		require.NoError(t, err)
		assert.Zero(t, result.ContactsReset)
		assert.Zero(t, result.BatchesPaused)
	})
}

func TestCancelBatch(t *testing.T) {
	t.Run("Success - pending contacts cancelled, terminal ones kept", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "cancel_batch")
		defer cleanup()

		ctx := context.Background()
		batch := client.EnrichmentBatch.Create().
			SetName("to cancel").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(2).
			SetStatus(enrichmentbatch.StatusPending).
			SaveX(ctx)
		client.Contact.Create().
			SetFirstName("Pending").
			SetLastName("Agent").
			SetStatus(contact.StatusPending).
			SetBatch(batch).
			SaveX(ctx)
		client.Contact.Create().
			SetFirstName("Done").
			SetLastName("Agent").
			SetStatus(contact.StatusSuccess).
			SetBatch(batch).
			SaveX(ctx)

		require.NoError(t, CancelBatch(ctx, client, batch.ID))

		assert.Equal(t, enrichmentbatch.StatusCancelled,
			client.EnrichmentBatch.GetX(ctx, batch.ID).Status)
		assert.Equal(t, 1, client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusCancelled)).
			CountX(ctx))
		assert.Equal(t, 1, client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusSuccess)).
			CountX(ctx))
	})

	t.Run("Failure - unknown batch", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "cancel_missing")
		defer cleanup()

		err := CancelBatch(context.Background(), client, 9999)
		assert.Error(t, err)
	})
}

func TestBatchStats(t *testing.T) {
	client, cleanup := setupJobsTest(t, "stats")
	defer cleanup()

	ctx := context.Background()
	batch := client.EnrichmentBatch.Create().
		SetName("stats").
		SetOwnerEmail("owner@example.com").
		SetTotalCount(4).
		SetStatus(enrichmentbatch.StatusCompleted).
		SaveX(ctx)

	statuses := []contact.Status{
		contact.StatusSuccess,
		contact.StatusSuccess,
		contact.StatusFailed,
		contact.StatusPending,
	}
	for i, st := range statuses {
		client.Contact.Create().
			SetFirstName("Agent").
			SetLastName("Stats").
			SetStatus(st).
			SetBatch(batch).
			SaveX(ctx)
		_ = i
	}

	stats, err := BatchStats(ctx, client, batch.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalContacts)
	assert.Equal(t, 2, stats.EnrichedContacts)
	assert.Equal(t, 1, stats.FailedContacts)
	assert.Equal(t, 1, stats.PendingContacts)
	// Success rate counts only terminal contacts: 2 of 3.
	assert.InDelta(t, 66.67, stats.SuccessRate, 0.01)
}
