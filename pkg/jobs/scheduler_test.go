package jobs

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promarkhq/marketingdb/ent"
	"github.com/promarkhq/marketingdb/ent/contact"
	"github.com/promarkhq/marketingdb/ent/enrichmentbatch"
	"github.com/promarkhq/marketingdb/ent/enttest"
	"github.com/promarkhq/marketingdb/pkg/enrich"

	_ "github.com/mattn/go-sqlite3"
)

// trackingEnricher counts in-flight calls and returns canned results keyed by
// contact name.
type trackingEnricher struct {
	mu       sync.Mutex
	results  map[string]*enrich.Result
	inFlight int64
	maxSeen  int64
	calls    int64
}

func newTrackingEnricher() *trackingEnricher {
	return &trackingEnricher{results: make(map[string]*enrich.Result)}
}

func (e *trackingEnricher) Enrich(_ context.Context, fields enrich.ContactFields) *enrich.Result {
	cur := atomic.AddInt64(&e.inFlight, 1)
	defer atomic.AddInt64(&e.inFlight, -1)
	atomic.AddInt64(&e.calls, 1)

	e.mu.Lock()
	if cur > e.maxSeen {
		e.maxSeen = cur
	}
	result := e.results[fields.Name]
	e.mu.Unlock()

	if result != nil {
		return result
	}
	return &enrich.Result{Original: fields}
}

func (e *trackingEnricher) setResult(name string, r *enrich.Result) {
	e.mu.Lock()
	e.results[name] = r
	e.mu.Unlock()
}

func (e *trackingEnricher) maxInFlight() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.maxSeen
}

func resultWithEmail(email string, confidence float64) *enrich.Result {
	return &enrich.Result{
		Findings: enrich.Findings{
			Search: &enrich.SearchFindings{
				Emails: []enrich.CandidateEmail{
					{Value: email, Source: "search", Confidence: confidence},
				},
			},
		},
	}
}

func setupJobsTest(t *testing.T, name string) (*ent.Client, func()) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1&_busy_timeout=10000", name)
	client := enttest.Open(t, "sqlite3", dsn)
	return client, func() { client.Close() }
}

func createBatchWithContacts(t *testing.T, client *ent.Client, n int) *ent.EnrichmentBatch {
	t.Helper()
	batch := client.EnrichmentBatch.Create().
		SetName("test batch").
		SetOwnerEmail("owner@example.com").
		SetTotalCount(n).
		SetStatus(enrichmentbatch.StatusPending).
		SaveX(context.Background())

	for i := 0; i < n; i++ {
		client.Contact.Create().
			SetFirstName(fmt.Sprintf("Agent%d", i)).
			SetLastName("Test").
			SetStatus(contact.StatusPending).
			SetBatch(batch).
			SaveX(context.Background())
	}
	return batch
}

func TestScheduler_Run(t *testing.T) {
	t.Run("Success - concurrency never exceeds the configured bound", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_bound")
		defer cleanup()

		batch := createBatchWithContacts(t, client, 20)
		enricher := newTrackingEnricher()

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 5}, nil)
		_, _, err := sched.Run(context.Background(), batch.ID)
		require.NoError(t, err)

		assert.Equal(t, int64(20), atomic.LoadInt64(&enricher.calls))
		assert.LessOrEqual(t, enricher.maxInFlight(), int64(5))
	})

	t.Run("Success - mixed outcomes finalize contacts and batch", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_mixed")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 3)

		enricher := newTrackingEnricher()
		enricher.setResult("Agent0 Test", resultWithEmail("agent0@example.com", 0.85))
		enricher.setResult("Agent1 Test", resultWithEmail("agent1@example.com", 0.70))
		// Agent2 gets the default empty result: no data from any source.

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 2}, nil)
		succeeded, failed, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, succeeded)
		assert.Equal(t, 1, failed)

		final := client.EnrichmentBatch.GetX(ctx, batch.ID)
		assert.Equal(t, enrichmentbatch.StatusCompleted, final.Status)
		assert.Equal(t, 3, final.ProcessedCount)
		assert.Equal(t, 2, final.SucceededCount)
		assert.Equal(t, 1, final.FailedCount)
		assert.NotNil(t, final.StartedAt)

		enriched := client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusSuccess)).
			AllX(ctx)
		require.Len(t, enriched, 2)
		for _, c := range enriched {
			assert.NotEmpty(t, c.EnrichedEmail)
			assert.Equal(t, "search", c.EnrichedEmailSource)
			// Original email was empty, so the winner also fills it.
			assert.Equal(t, c.EnrichedEmail, c.Email)
		}

		failedContacts := client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusFailed)).
			AllX(ctx)
		require.Len(t, failedContacts, 1)
		assert.Equal(t, "no contact data found from any source", failedContacts[0].ErrorDetail)
	})

	t.Run("Success - original fields are never overwritten", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_preserve")
		defer cleanup()

		ctx := context.Background()
		batch := client.EnrichmentBatch.Create().
			SetName("preserve").
			SetOwnerEmail("owner@example.com").
			SetTotalCount(1).
			SetStatus(enrichmentbatch.StatusPending).
			SaveX(ctx)
		client.Contact.Create().
			SetFirstName("Jane").
			SetLastName("Smith").
			SetEmail("jane@original.com").
			SetPhone("(212) 555-0000").
			SetStatus(contact.StatusPending).
			SetBatch(batch).
			SaveX(ctx)

		enricher := newTrackingEnricher()
		enricher.setResult("Jane Smith", &enrich.Result{
			Findings: enrich.Findings{
				Search: &enrich.SearchFindings{
					Emails: []enrich.CandidateEmail{{Value: "found@elsewhere.com", Source: "search", Confidence: 0.95}},
					Phones: []enrich.CandidatePhone{{Value: "(305) 555-0199", Source: "search", Confidence: 0.90}},
				},
			},
		})

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil)
		_, _, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)

		c := client.Contact.Query().OnlyX(ctx)
		assert.Equal(t, contact.StatusSuccess, c.Status)
		// Findings land in the enriched columns only.
		assert.Equal(t, "jane@original.com", c.Email)
		assert.Equal(t, "(212) 555-0000", c.Phone)
		assert.Equal(t, "found@elsewhere.com", c.EnrichedEmail)
		assert.Equal(t, "(305) 555-0199", c.EnrichedPhone)
	})

	t.Run("Failure - second start loses the claim", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_claim")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 1)
		enricher := newTrackingEnricher()

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil)
		_, _, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)

		_, _, err = sched.Run(ctx, batch.ID)
		assert.ErrorIs(t, err, ErrBatchNotPending)
	})

	t.Run("Success - cancelled contacts are skipped without status change", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_cancel")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 2)

		// Cancel one contact between batch creation and the run, the way a
		// batch deletion would.
		victim := client.Contact.Query().FirstX(ctx)
		client.Contact.UpdateOneID(victim.ID).
			SetStatus(contact.StatusCancelled).
			SaveX(ctx)

		enricher := newTrackingEnricher()
		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil)
		_, _, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)

		// Only the still-pending contact reached the enricher.
		assert.Equal(t, int64(1), atomic.LoadInt64(&enricher.calls))

		after := client.Contact.GetX(ctx, victim.ID)
		assert.Equal(t, contact.StatusCancelled, after.Status)
	})

	t.Run("Success - empty batch completes immediately", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_empty")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 0)
		enricher := newTrackingEnricher()

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 4}, nil)
		succeeded, failed, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)
		assert.Zero(t, succeeded)
		assert.Zero(t, failed)

		final := client.EnrichmentBatch.GetX(ctx, batch.ID)
		assert.Equal(t, enrichmentbatch.StatusCompleted, final.Status)
	})

	t.Run("Success - completion notifier receives final counts", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_notify")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 1)

		enricher := newTrackingEnricher()
		enricher.setResult("Agent0 Test", resultWithEmail("agent0@example.com", 0.80))

		var notified *ent.EnrichmentBatch
		notifier := notifierFunc(func(_ context.Context, b *ent.EnrichmentBatch) {
			notified = b
		})

		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil).
			WithNotifier(notifier)
		_, _, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)

		require.NotNil(t, notified)
		assert.Equal(t, batch.ID, notified.ID)
		assert.Equal(t, 1, notified.SucceededCount)
		assert.Equal(t, enrichmentbatch.StatusCompleted, notified.Status)
	})

	t.Run("Success - batch cancelled mid-run stays cancelled", func(t *testing.T) {
		client, cleanup := setupJobsTest(t, "sched_cancel_batch")
		defer cleanup()

		ctx := context.Background()
		batch := createBatchWithContacts(t, client, 2)

		var notified bool
		notifier := notifierFunc(func(context.Context, *ent.EnrichmentBatch) {
			notified = true
		})

		// The enricher cancels the batch while the first contact is in
		// flight, the way a batch deletion arriving mid-run would.
		enricher := &cancellingEnricher{client: client, batchID: batch.ID}
		sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil).
			WithNotifier(notifier)
		succeeded, failed, err := sched.Run(ctx, batch.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, succeeded)
		assert.Zero(t, failed)

		final := client.EnrichmentBatch.GetX(ctx, batch.ID)
		assert.Equal(t, enrichmentbatch.StatusCancelled, final.Status)
		assert.Equal(t, 2, final.ProcessedCount)
		assert.Equal(t, 1, final.SucceededCount)
		assert.False(t, notified, "a cancelled batch must not send a completion notification")

		// The second contact was still pending at cancellation time and
		// never reached the enricher.
		assert.Equal(t, 1, client.Contact.Query().
			Where(contact.StatusEQ(contact.StatusCancelled)).
			CountX(ctx))
	})
}

// cancellingEnricher cancels its batch from inside the enrichment call.
type cancellingEnricher struct {
	client  *ent.Client
	batchID int
}

func (e *cancellingEnricher) Enrich(ctx context.Context, _ enrich.ContactFields) *enrich.Result {
	if err := CancelBatch(ctx, e.client, e.batchID); err != nil {
		panic(err)
	}
	return resultWithEmail("found@example.com", 0.80)
}

// notifierFunc adapts a function to the Notifier interface.
type notifierFunc func(ctx context.Context, batch *ent.EnrichmentBatch)

func (f notifierFunc) NotifyBatchCompleted(ctx context.Context, batch *ent.EnrichmentBatch) {
	f(ctx, batch)
}

// panicEnricher always panics; the scheduler must contain it.
type panicEnricher struct{}

func (panicEnricher) Enrich(context.Context, enrich.ContactFields) *enrich.Result {
	panic("source client bug")
}

func TestScheduler_PanicContainment(t *testing.T) {
	client, cleanup := setupJobsTest(t, "sched_panic")
	defer cleanup()

	ctx := context.Background()
	batch := createBatchWithContacts(t, client, 2)

	sched := NewScheduler(client, nil, panicEnricher{}, SchedulerConfig{Concurrency: 1}, nil)
	succeeded, failed, err := sched.Run(ctx, batch.ID)
	require.NoError(t, err)
	assert.Zero(t, succeeded)
	assert.Equal(t, 2, failed)

	failedContacts := client.Contact.Query().
		Where(contact.StatusEQ(contact.StatusFailed)).
		CountX(ctx)
	assert.Equal(t, 2, failedContacts)

	final := client.EnrichmentBatch.GetX(ctx, batch.ID)
	assert.Equal(t, enrichmentbatch.StatusCompleted, final.Status)
}

func TestApplyFindings_CompletenessScore(t *testing.T) {
	client, cleanup := setupJobsTest(t, "sched_score")
	defer cleanup()

	ctx := context.Background()
	batch := createBatchWithContacts(t, client, 1)

	enricher := newTrackingEnricher()
	enricher.setResult("Agent0 Test", &enrich.Result{
		Findings: enrich.Findings{
			Search: &enrich.SearchFindings{
				Emails: []enrich.CandidateEmail{{Value: "a@b.com", Source: "search", Confidence: 0.80}},
				Phones: []enrich.CandidatePhone{{Value: "(212) 555-0123", Source: "search", Confidence: 0.60}},
			},
			Website: &enrich.WebsiteFindings{
				Scraped:     true,
				SocialLinks: map[string]string{"facebook": "https://facebook.com/x"},
			},
			Social: &enrich.SocialFindings{Followers: 1200, About: "Realty team"},
		},
	})

	sched := NewScheduler(client, nil, enricher, SchedulerConfig{Concurrency: 1}, nil)
	_, _, err := sched.Run(ctx, batch.ID)
	require.NoError(t, err)

	c := client.Contact.Query().OnlyX(ctx)
	// email 0.40 + phone 0.40 + social links 0.10 + social profile 0.10
	assert.InDelta(t, 1.0, c.CompletenessScore, 1e-9)
	// mean of the email and phone winner confidences
	assert.InDelta(t, 0.70, c.ConfidenceScore, 1e-9)
	// Empty original facebook_url gets filled from the scraped social link.
	assert.Equal(t, "https://facebook.com/x", c.FacebookURL)
}
