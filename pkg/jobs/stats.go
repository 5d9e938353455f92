package jobs

import (
	"context"
	"fmt"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
)

// EnrichmentStats summarizes enrichment outcomes across a batch or the whole
// store.
type EnrichmentStats struct {
	TotalContacts    int     `json:"total_contacts"`
	EnrichedContacts int     `json:"enriched_contacts"`
	FailedContacts   int     `json:"failed_contacts"`
	PendingContacts  int     `json:"pending_contacts"`
	SuccessRate      float64 `json:"success_rate"` // Percentage of terminal contacts that succeeded
}

// BatchStats returns enrichment statistics for one batch.
func BatchStats(ctx context.Context, db *ent.Client, batchID int) (*EnrichmentStats, error) {
	base := func() *ent.ContactQuery {
		return db.Contact.Query().Where(contact.HasBatchWith(enrichmentbatch.ID(batchID)))
	}
	return computeStats(ctx, base)
}

// OverallStats returns enrichment statistics across all contacts.
func OverallStats(ctx context.Context, db *ent.Client) (*EnrichmentStats, error) {
	return computeStats(ctx, func() *ent.ContactQuery { return db.Contact.Query() })
}

func computeStats(ctx context.Context, query func() *ent.ContactQuery) (*EnrichmentStats, error) {
	total, err := query().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	enriched, err := query().Where(contact.StatusEQ(contact.StatusSuccess)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count enriched contacts: %w", err)
	}
	failed, err := query().Where(contact.StatusEQ(contact.StatusFailed)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count failed contacts: %w", err)
	}
	pending, err := query().Where(contact.StatusEQ(contact.StatusPending)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending contacts: %w", err)
	}

	rate := 0.0
	if terminal := enriched + failed; terminal > 0 {
		rate = (float64(enriched) / float64(terminal)) * 100
	}

	return &EnrichmentStats{
		TotalContacts:    total,
		EnrichedContacts: enriched,
		FailedContacts:   failed,
		PendingContacts:  pending,
		SuccessRate:      rate,
	}, nil
}
