package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/pkg/cache"
	"github.com/promarkhq/marketingdb/pkg/enrich"
	"github.com/promarkhq/marketingdb/pkg/logger"
)

const (
	// DefaultConcurrency bounds in-flight contacts. It is sized to the
	// record store's connection budget (pool of 50), not to the remote
	// APIs: store contention is the bottleneck.
	DefaultConcurrency = 20
	// DefaultDelay is the pause applied after each contact regardless of
	// outcome, to stay under external rate limits. Per-task, not global:
	// steady-state throughput is concurrency/delay contacts per second.
	DefaultDelay = 2 * time.Second
	// progressFlushEvery controls how often aggregate counters are
	// persisted to the batch row mid-run.
	progressFlushEvery = 10

	progressSnapshotTTL = time.Hour
)

// ErrBatchNotPending is returned when Run is called on a batch that is not
// in pending status. Starting a batch is an exclusive, one-shot transition.
var ErrBatchNotPending = errors.New("batch is not in pending status")

// ContactEnricher produces enrichment findings for one contact's fields.
type ContactEnricher interface {
	Enrich(ctx context.Context, fields enrich.ContactFields) *enrich.Result
}

// Notifier is told when a batch reaches a terminal state.
type Notifier interface {
	NotifyBatchCompleted(ctx context.Context, batch *ent.EnrichmentBatch)
}

// SchedulerConfig tunes the enrichment run.
type SchedulerConfig struct {
	Concurrency int
	Delay       time.Duration
}

// Scheduler runs a batch of contacts through the enricher under a bounded
// concurrency policy, persisting per-contact results and aggregate progress
// incrementally.
type Scheduler struct {
	db       *ent.Client
	cache    *cache.Client
	enricher ContactEnricher
	notifier Notifier
	log      logger.Logger

	concurrency int
	delay       time.Duration

	// Aggregate counters for the in-flight run. Monotonically increasing;
	// flushMu orders flushes so a stale snapshot never overwrites a newer
	// one.
	processed int64
	succeeded int64
	failed    int64
	flushMu   sync.Mutex
}

// NewScheduler creates an enrichment scheduler. Cache and notifier are
// optional; a nil cache disables progress snapshots and a nil notifier
// disables completion notifications.
func NewScheduler(db *ent.Client, c *cache.Client, enricher ContactEnricher, cfg SchedulerConfig, log logger.Logger) *Scheduler {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	if cfg.Delay < 0 {
		cfg.Delay = DefaultDelay
	}
	if log == nil {
		log = logger.Default()
	}
	return &Scheduler{
		db:          db,
		cache:       c,
		enricher:    enricher,
		log:         log,
		concurrency: cfg.Concurrency,
		delay:       cfg.Delay,
	}
}

// WithNotifier attaches a completion notifier.
func (s *Scheduler) WithNotifier(n Notifier) *Scheduler {
	s.notifier = n
	return s
}

// ProgressKey is the cache key under which a batch's progress snapshot is
// published mid-run.
func ProgressKey(batchID int) string {
	return fmt.Sprintf("enrich:progress:%d", batchID)
}

// ProgressSnapshot is the progress document published to the cache and
// served to polling clients.
type ProgressSnapshot struct {
	BatchID   int       `json:"batch_id"`
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Run enriches every pending contact in the batch. It claims the batch with
// a conditional pending->processing update, so concurrent starts lose; per
// contact it opens a dedicated transaction to claim the row, runs the
// enricher, and commits the result in a second transaction. A single
// contact's failure never aborts the batch; a store-level failure during
// setup surfaces as an error. Returns the succeeded and failed counts.
func (s *Scheduler) Run(ctx context.Context, batchID int) (int, int, error) {
	claimed, err := s.db.EnrichmentBatch.Update().
		Where(
			enrichmentbatch.ID(batchID),
			enrichmentbatch.StatusEQ(enrichmentbatch.StatusPending),
		).
		SetStatus(enrichmentbatch.StatusProcessing).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to claim batch: %w", err)
	}
	if claimed == 0 {
		return 0, 0, ErrBatchNotPending
	}

	contacts, err := s.db.Contact.Query().
		Where(
			contact.HasBatchWith(enrichmentbatch.ID(batchID)),
			contact.StatusEQ(contact.StatusPending),
		).
		Order(ent.Asc(contact.FieldID)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load pending contacts: %w", err)
	}

	atomic.StoreInt64(&s.processed, 0)
	atomic.StoreInt64(&s.succeeded, 0)
	atomic.StoreInt64(&s.failed, 0)

	s.log.Info("enrichment run started",
		"batch_id", batchID,
		"contacts", len(contacts),
		"concurrency", s.concurrency,
	)

	semaphore := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for _, c := range contacts {
		semaphore <- struct{}{} // Acquire admission slot
		wg.Add(1)

		go func(contactID int) {
			defer wg.Done()
			defer func() { <-semaphore }() // Release admission slot

			s.processContact(ctx, contactID)

			// Rate limiting between contacts, success or failure alike.
			time.Sleep(s.delay)

			done := atomic.AddInt64(&s.processed, 1)
			if done%progressFlushEvery == 0 {
				s.flushProgress(ctx, batchID, len(contacts))
			}
		}(c.ID)
	}

	wg.Wait()

	succeeded := int(atomic.LoadInt64(&s.succeeded))
	failed := int(atomic.LoadInt64(&s.failed))

	if err := s.finalizeBatch(ctx, batchID, len(contacts), succeeded, failed); err != nil {
		return succeeded, failed, err
	}

	s.log.Info("enrichment run finished",
		"batch_id", batchID,
		"succeeded", succeeded,
		"failed", failed,
	)

	return succeeded, failed, nil
}

// processContact claims, enriches and finalizes one contact. Every failure
// path is contained here: the contact ends up failed with a diagnostic, and
// sibling contacts are unaffected.
func (s *Scheduler) processContact(ctx context.Context, contactID int) {
	current, claimed, err := s.claimContact(ctx, contactID)
	if err != nil {
		s.log.Error("failed to claim contact", "contact_id", contactID, "error", err.Error())
		s.markFailed(ctx, contactID, err)
		return
	}
	if !claimed {
		// Externally cancelled (or already terminal): no status change.
		return
	}

	result := s.safeEnrich(ctx, current)

	if err := s.finalizeContact(ctx, contactID, current, result); err != nil {
		s.log.Error("failed to persist enrichment", "contact_id", contactID, "error", err.Error())
		s.markFailed(ctx, contactID, err)
		return
	}

	if result != nil && result.Findings.HasData() {
		atomic.AddInt64(&s.succeeded, 1)
	} else {
		atomic.AddInt64(&s.failed, 1)
	}
}

// claimContact re-fetches the contact inside a dedicated transaction and
// marks it processing. The commit happens before any network work so
// progress is visible to readers immediately. Returns claimed=false when the
// contact was cancelled out-of-band or is no longer pending.
func (s *Scheduler) claimContact(ctx context.Context, contactID int) (*ent.Contact, bool, error) {
	var (
		current *ent.Contact
		claimed bool
	)
	err := withTx(ctx, s.db, func(tx *ent.Tx) error {
		c, err := tx.Contact.Get(ctx, contactID)
		if err != nil {
			return err
		}
		if c.Status != contact.StatusPending {
			// Cancelled by a batch deletion, or already claimed. Leave it.
			return nil
		}
		if _, err := tx.Contact.UpdateOneID(contactID).
			SetStatus(contact.StatusProcessing).
			Save(ctx); err != nil {
			return err
		}
		current = c
		claimed = true
		return nil
	})
	return current, claimed, err
}

// safeEnrich runs the enricher with a panic guard so a bug in a source
// client is contained to this contact.
func (s *Scheduler) safeEnrich(ctx context.Context, c *ent.Contact) (result *enrich.Result) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("enricher panicked", "contact_id", c.ID, "panic", fmt.Sprintf("%v", r))
			result = nil
		}
	}()
	return s.enricher.Enrich(ctx, fieldsFromContact(c))
}

// finalizeContact writes the enrichment outcome in its own transaction.
func (s *Scheduler) finalizeContact(ctx context.Context, contactID int, original *ent.Contact, result *enrich.Result) error {
	return withTx(ctx, s.db, func(tx *ent.Tx) error {
		upd := tx.Contact.UpdateOneID(contactID)

		if result != nil && result.Findings.HasData() {
			applyFindings(upd, original, result)
			upd.SetStatus(contact.StatusSuccess)
		} else {
			upd.SetStatus(contact.StatusFailed).
				SetErrorDetail("no contact data found from any source")
		}

		_, err := upd.Save(ctx)
		return err
	})
}

// markFailed records an unexpected per-contact error. Best effort: if the
// store itself is down this write fails too, and the recovery sweep picks
// the contact up on restart.
func (s *Scheduler) markFailed(ctx context.Context, contactID int, cause error) {
	atomic.AddInt64(&s.failed, 1)
	detail := cause.Error()
	if len(detail) > 500 {
		detail = detail[:500]
	}
	_, err := s.db.Contact.UpdateOneID(contactID).
		SetStatus(contact.StatusFailed).
		SetErrorDetail(detail).
		Save(ctx)
	if err != nil {
		s.log.Error("failed to mark contact failed", "contact_id", contactID, "error", err.Error())
	}
}

// flushProgress persists the aggregate counters to the batch row and
// publishes a snapshot to the cache. The mutex orders concurrent flushes:
// counter values are captured under the lock, so a later flush always writes
// greater-or-equal counts and observed progress never decreases.
func (s *Scheduler) flushProgress(ctx context.Context, batchID, total int) {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	snapshot := ProgressSnapshot{
		BatchID:   batchID,
		Total:     total,
		Processed: int(atomic.LoadInt64(&s.processed)),
		Succeeded: int(atomic.LoadInt64(&s.succeeded)),
		Failed:    int(atomic.LoadInt64(&s.failed)),
		UpdatedAt: time.Now(),
	}

	_, err := s.db.EnrichmentBatch.UpdateOneID(batchID).
		SetProcessedCount(snapshot.Processed).
		SetSucceededCount(snapshot.Succeeded).
		SetFailedCount(snapshot.Failed).
		Save(ctx)
	if err != nil {
		s.log.Warn("failed to flush batch progress", "batch_id", batchID, "error", err.Error())
	}

	s.publishSnapshot(ctx, snapshot)
}

func (s *Scheduler) publishSnapshot(ctx context.Context, snapshot ProgressSnapshot) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, ProgressKey(snapshot.BatchID), string(data), progressSnapshotTTL); err != nil {
		s.log.Warn("failed to publish progress snapshot", "batch_id", snapshot.BatchID, "error", err.Error())
	}
}

// finalizeBatch writes final aggregate counts and the terminal status. A
// batch with some failed contacts still completes: partial success is not a
// systemic failure. The status write is conditional on the batch still being
// in processing: an operator may have cancelled it while in-flight contacts
// drained, and cancelled sticks.
func (s *Scheduler) finalizeBatch(ctx context.Context, batchID, total, succeeded, failed int) error {
	processed := int(atomic.LoadInt64(&s.processed))

	completed, err := s.db.EnrichmentBatch.Update().
		Where(
			enrichmentbatch.ID(batchID),
			enrichmentbatch.StatusEQ(enrichmentbatch.StatusProcessing),
		).
		SetProcessedCount(processed).
		SetSucceededCount(succeeded).
		SetFailedCount(failed).
		SetStatus(enrichmentbatch.StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finalize batch: %w", err)
	}

	if completed == 0 {
		// The batch left processing out-of-band. Flush the final counters
		// so progress stays accurate, but keep the status and send no
		// completion notification.
		_, err := s.db.EnrichmentBatch.UpdateOneID(batchID).
			SetProcessedCount(processed).
			SetSucceededCount(succeeded).
			SetFailedCount(failed).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to flush final counts: %w", err)
		}
		s.log.Info("batch left processing mid-run, final status untouched", "batch_id", batchID)
	}

	s.publishSnapshot(ctx, ProgressSnapshot{
		BatchID:   batchID,
		Total:     total,
		Processed: processed,
		Succeeded: succeeded,
		Failed:    failed,
		UpdatedAt: time.Now(),
	})

	if s.notifier != nil && completed > 0 {
		batch, err := s.db.EnrichmentBatch.Get(ctx, batchID)
		if err != nil {
			return fmt.Errorf("failed to load finalized batch: %w", err)
		}
		s.notifier.NotifyBatchCompleted(ctx, batch)
	}
	return nil
}

// applyFindings merges enrichment results into a contact update under the
// fill-if-empty policy: original non-empty fields are never overwritten,
// findings land in the enriched_* columns, and empty originals may be filled.
func applyFindings(upd *ent.ContactUpdateOne, original *ent.Contact, result *enrich.Result) {
	var confidences []float64
	var filled float64

	if best := result.BestEmail(); best != nil {
		upd.SetEnrichedEmail(best.Value).
			SetEnrichedEmailConfidence(best.Confidence).
			SetEnrichedEmailSource(best.Source)
		if original.Email == "" {
			upd.SetEmail(best.Value)
		}
		confidences = append(confidences, best.Confidence)
		filled += completenessEmailWeight
	}

	if best := result.BestPhone(); best != nil {
		upd.SetEnrichedPhone(best.Value).
			SetEnrichedPhoneConfidence(best.Confidence).
			SetEnrichedPhoneSource(best.Source).
			SetEnrichedPhoneFormatted(best.Value)
		if original.Phone == "" {
			upd.SetPhone(best.Value)
		}
		confidences = append(confidences, best.Confidence)
		filled += completenessPhoneWeight
	}

	if v := result.Findings.Validation; v != nil {
		upd.SetNillableEmailValid(v.Valid).
			SetEmailValidationStatus(v.Status)
	}

	if w := result.Findings.Website; w != nil {
		if len(w.Emails) > 0 {
			upd.SetWebsiteEmails(w.Emails)
		}
		if len(w.Phones) > 0 {
			upd.SetWebsitePhones(w.Phones)
		}
		if len(w.SocialLinks) > 0 {
			upd.SetSocialLinks(w.SocialLinks)
			filled += completenessSocialLinksWeight
			if original.FacebookURL == "" && w.SocialLinks["facebook"] != "" {
				upd.SetFacebookURL(w.SocialLinks["facebook"])
			}
		}
	}

	if soc := result.Findings.Social; soc != nil {
		if soc.Followers > 0 {
			upd.SetSocialFollowers(soc.Followers)
		}
		if soc.About != "" {
			upd.SetSocialAbout(soc.About)
		}
		if soc.Followers > 0 || soc.About != "" {
			filled += completenessSocialProfileWeight
		}
		if original.Website == "" && soc.Website != "" {
			upd.SetWebsite(soc.Website)
		}
	}

	upd.SetCompletenessScore(clamp01(filled))
	if len(confidences) > 0 {
		var sum float64
		for _, c := range confidences {
			sum += c
		}
		upd.SetConfidenceScore(sum / float64(len(confidences)))
	}
}

// Completeness weights: finding a direct email or phone is worth far more
// than profile color.
const (
	completenessEmailWeight         = 0.40
	completenessPhoneWeight         = 0.40
	completenessSocialLinksWeight   = 0.10
	completenessSocialProfileWeight = 0.10
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// fieldsFromContact maps a stored contact row to the enricher's input.
func fieldsFromContact(c *ent.Contact) enrich.ContactFields {
	name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	return enrich.ContactFields{
		Name:        name,
		Company:     c.Company,
		City:        c.City,
		State:       c.State,
		Phone:       c.Phone,
		Email:       c.Email,
		Website:     c.Website,
		FacebookURL: c.FacebookURL,
	}
}

// withTx runs fn inside a transaction with guaranteed cleanup: rollback on
// error or panic, commit otherwise.
func withTx(ctx context.Context, client *ent.Client, fn func(tx *ent.Tx) error) error {
	tx, err := client.Tx(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	return tx.Commit()
}
