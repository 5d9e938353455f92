package enrich

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSearcher implements Searcher for testing
type mockSearcher struct {
	findings *SearchFindings
	calls    int
	lastQ    SearchQuery
}

func (m *mockSearcher) Search(_ context.Context, q SearchQuery) *SearchFindings {
	m.calls++
	m.lastQ = q
	if m.findings != nil {
		return m.findings
	}
	return &SearchFindings{Emails: []CandidateEmail{}, Phones: []CandidatePhone{}}
}

// mockScraper implements Scraper for testing
type mockScraper struct {
	findings *WebsiteFindings
	calls    int
}

func (m *mockScraper) Scrape(_ context.Context, _ string) *WebsiteFindings {
	m.calls++
	if m.findings != nil {
		return m.findings
	}
	return &WebsiteFindings{Emails: []string{}, Phones: []string{}, SocialLinks: map[string]string{}}
}

// mockPages implements PageFetcher for testing
type mockPages struct {
	configured bool
	findings   *SocialFindings
	calls      int
}

func (m *mockPages) Configured() bool { return m.configured }

func (m *mockPages) PageData(_ context.Context, _ string) *SocialFindings {
	m.calls++
	if m.findings != nil {
		return m.findings
	}
	return &SocialFindings{Emails: []string{}, Posts: []SocialPost{}}
}

// mockVerifier implements Verifier for testing
type mockVerifier struct {
	configured bool
	findings   *ValidationFindings
	calls      int
	lastEmail  string
}

func (m *mockVerifier) Configured() bool { return m.configured }

func (m *mockVerifier) Validate(_ context.Context, email string) *ValidationFindings {
	m.calls++
	m.lastEmail = email
	if m.findings != nil {
		return m.findings
	}
	return &ValidationFindings{Email: email, Status: "error"}
}

func TestNewEnricher(t *testing.T) {
	t.Run("Failure - missing search key", func(t *testing.T) {
		_, err := NewEnricher(Config{})
		assert.ErrorIs(t, err, ErrMissingSearchKey)
	})

	t.Run("Success - search key alone is enough", func(t *testing.T) {
		e, err := NewEnricher(Config{SerperAPIKey: "key"})
		require.NoError(t, err)
		assert.NotNil(t, e)
	})
}

func TestEnricher_Enrich(t *testing.T) {
	t.Run("Success - all sources called when fields present", func(t *testing.T) {
		search := &mockSearcher{}
		scraper := &mockScraper{}
		pages := &mockPages{configured: true}
		verifier := &mockVerifier{configured: true}

		e := NewEnricherWithClients(search, scraper, pages, verifier, nil)
		e.Enrich(context.Background(), ContactFields{
			Name:        "Jane Smith",
			Company:     "Acme Realty",
			Website:     "https://acme-realty.com",
			FacebookURL: "https://facebook.com/acmerealty",
		})

		assert.Equal(t, 1, search.calls)
		assert.Equal(t, 1, scraper.calls)
		assert.Equal(t, 1, pages.calls)
		assert.Equal(t, "Jane Smith", search.lastQ.Name)
	})

	t.Run("Success - sources skipped for missing fields", func(t *testing.T) {
		search := &mockSearcher{}
		scraper := &mockScraper{}
		pages := &mockPages{configured: true}
		verifier := &mockVerifier{configured: true}

		e := NewEnricherWithClients(search, scraper, pages, verifier, nil)
		result := e.Enrich(context.Background(), ContactFields{Name: "Jane Smith"})

		assert.Equal(t, 1, search.calls)
		assert.Zero(t, scraper.calls)
		assert.Zero(t, pages.calls)
		assert.Nil(t, result.Findings.Website)
		assert.Nil(t, result.Findings.Social)
	})

	t.Run("Success - placeholder sentinels treated as empty", func(t *testing.T) {
		search := &mockSearcher{}
		scraper := &mockScraper{}
		pages := &mockPages{configured: true}

		e := NewEnricherWithClients(search, scraper, pages, &mockVerifier{}, nil)
		e.Enrich(context.Background(), ContactFields{
			Name:        "Jane Smith",
			Website:     "Not Found",
			FacebookURL: "N/A",
		})

		assert.Zero(t, scraper.calls)
		assert.Zero(t, pages.calls)
	})

	t.Run("Success - unconfigured social source skipped", func(t *testing.T) {
		pages := &mockPages{configured: false}

		e := NewEnricherWithClients(&mockSearcher{}, &mockScraper{}, pages, &mockVerifier{}, nil)
		e.Enrich(context.Background(), ContactFields{
			Name:        "Jane Smith",
			FacebookURL: "https://facebook.com/acmerealty",
		})

		assert.Zero(t, pages.calls)
	})

	t.Run("Success - validator receives the best email", func(t *testing.T) {
		search := &mockSearcher{findings: &SearchFindings{
			Emails: []CandidateEmail{
				{Value: "maybe@gmail.com", Source: "search", Confidence: 0.70},
			},
		}}
		scraper := &mockScraper{findings: &WebsiteFindings{
			Emails:  []string{"jane@acme-realty.com"},
			Scraped: true,
		}}
		verifier := &mockVerifier{configured: true}

		e := NewEnricherWithClients(search, scraper, &mockPages{}, verifier, nil)
		e.Enrich(context.Background(), ContactFields{
			Name:    "Jane Smith",
			Website: "https://acme-realty.com",
		})

		// Website hits outrank search hits.
		assert.Equal(t, 1, verifier.calls)
		assert.Equal(t, "jane@acme-realty.com", verifier.lastEmail)
	})

	t.Run("Success - no candidates means no validation call", func(t *testing.T) {
		verifier := &mockVerifier{configured: true}

		e := NewEnricherWithClients(&mockSearcher{}, &mockScraper{}, &mockPages{}, verifier, nil)
		result := e.Enrich(context.Background(), ContactFields{Name: "Jane Smith"})

		assert.Zero(t, verifier.calls)
		assert.Nil(t, result.Findings.Validation)
	})
}

func TestResult_BestEmail(t *testing.T) {
	t.Run("Success - social outranks website outranks search", func(t *testing.T) {
		r := &Result{Findings: Findings{
			Search: &SearchFindings{Emails: []CandidateEmail{
				{Value: "search@example.com", Source: "search", Confidence: 0.85},
			}},
			Website: &WebsiteFindings{Emails: []string{"site@example.com"}},
			Social:  &SocialFindings{Emails: []string{"page@example.com"}},
		}}

		best := r.BestEmail()
		require.NotNil(t, best)
		assert.Equal(t, "page@example.com", best.Value)
		assert.Equal(t, "social", best.Source)
		assert.InDelta(t, socialSourceConfidence, best.Confidence, 1e-9)
	})

	t.Run("Success - same value across sources keeps the higher confidence", func(t *testing.T) {
		r := &Result{Findings: Findings{
			Search: &SearchFindings{Emails: []CandidateEmail{
				{Value: "jane@example.com", Source: "search", Confidence: 0.70},
			}},
			Website: &WebsiteFindings{Emails: []string{"jane@example.com"}},
		}}

		best := r.BestEmail()
		require.NotNil(t, best)
		assert.Equal(t, "website", best.Source)
		assert.InDelta(t, websiteSourceConfidence, best.Confidence, 1e-9)
	})

	t.Run("Success - nil when no sources produced emails", func(t *testing.T) {
		r := &Result{}
		assert.Nil(t, r.BestEmail())
	})
}

func TestResult_BestPhone(t *testing.T) {
	t.Run("Success - social page phone wins", func(t *testing.T) {
		r := &Result{Findings: Findings{
			Search: &SearchFindings{Phones: []CandidatePhone{
				{Value: "(212) 555-0123", Source: "search", Confidence: 0.80},
			}},
			Social: &SocialFindings{Phone: "(212) 555-0188"},
		}}

		best := r.BestPhone()
		require.NotNil(t, best)
		assert.Equal(t, "(212) 555-0188", best.Value)
		assert.Equal(t, "social", best.Source)
	})

	t.Run("Success - nil when no sources produced phones", func(t *testing.T) {
		r := &Result{}
		assert.Nil(t, r.BestPhone())
	})
}

func TestUsable(t *testing.T) {
	assert.True(t, usable("Jane Smith"))
	assert.False(t, usable(""))
	assert.False(t, usable("   "))
	assert.False(t, usable("Not Found"))
	assert.False(t, usable("n/a"))
	assert.False(t, usable("-"))
}
