package jobs

import (
	"context"
	"fmt"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/pkg/logger"
)

// RecoveryResult reports what the startup sweep repaired.
type RecoveryResult struct {
	ContactsReset int `json:"contacts_reset"`
	BatchesPaused int `json:"batches_paused"`
}

// RecoverStuckBatches repairs state left behind by a crashed run: contacts
// stuck in processing go back to pending, and batches stuck in processing
// are paused for operator review. No contact silently disappears after a
// crash. Safe to call on every process start; a clean store is a no-op.
func RecoverStuckBatches(ctx context.Context, db *ent.Client, log logger.Logger) (*RecoveryResult, error) {
	if log == nil {
		log = logger.Default()
	}

	contactsReset, err := db.Contact.Update().
		Where(contact.StatusEQ(contact.StatusProcessing)).
		SetStatus(contact.StatusPending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset stuck contacts: %w", err)
	}

	batchesPaused, err := db.EnrichmentBatch.Update().
		Where(enrichmentbatch.StatusEQ(enrichmentbatch.StatusProcessing)).
		SetStatus(enrichmentbatch.StatusPaused).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause stuck batches: %w", err)
	}

	if contactsReset > 0 || batchesPaused > 0 {
		log.Warn("recovered interrupted enrichment state",
			"contacts_reset", contactsReset,
			"batches_paused", batchesPaused,
		)
	}

	return &RecoveryResult{
		ContactsReset: contactsReset,
		BatchesPaused: batchesPaused,
	}, nil
}

// CancelBatch marks a batch cancelled and flips its not-yet-terminal
// contacts to cancelled. Contacts already being processed finish their
// current unit of work; the scheduler re-checks status before claiming, so
// queued contacts are skipped.
func CancelBatch(ctx context.Context, db *ent.Client, batchID int) error {
	_, err := db.EnrichmentBatch.UpdateOneID(batchID).
		SetStatus(enrichmentbatch.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel batch: %w", err)
	}

	_, err = db.Contact.Update().
		Where(
			contact.HasBatchWith(enrichmentbatch.ID(batchID)),
			contact.StatusEQ(contact.StatusPending),
		).
		SetStatus(contact.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel pending contacts: %w", err)
	}
	return nil
}
