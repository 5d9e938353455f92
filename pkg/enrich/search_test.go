package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSerper serves canned organic results for every query.
func fakeSerper(t *testing.T, organic []serperOrganic) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("X-API-KEY"))

		var req serperRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotEmpty(t, req.Q)
		assert.Equal(t, searchResultCount, req.Num)

		json.NewEncoder(w).Encode(serperResponse{Organic: organic})
	}))
}

func TestSearchClient_Search(t *testing.T) {
	t.Run("Success - extracts personal email with name match", func(t *testing.T) {
		srv := fakeSerper(t, []serperOrganic{
			{
				Title:   "Jane Smith - Realtor",
				Snippet: "Contact Jane at jane.smith@example.com for listings",
				Link:    "https://example.com/jane",
			},
		})
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{
			Name:    "Jane Smith",
			Company: "Acme Realty",
		})

		require.Len(t, findings.Emails, 1)
		assert.Equal(t, "jane.smith@example.com", findings.Emails[0].Value)
		assert.Equal(t, "search", findings.Emails[0].Source)
		assert.InDelta(t, emailBaseConfidence+emailNameMatchBoost, findings.Emails[0].Confidence, 1e-9)
		assert.Contains(t, findings.Sources, "https://example.com/jane")
	})

	t.Run("Success - rejects generic mailbox on unknown domain", func(t *testing.T) {
		srv := fakeSerper(t, []serperOrganic{
			{Snippet: "Reach the office at info@random-agency.biz"},
		})
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Name: "Jane Smith"})

		// A generic mailbox on an unknown domain still earns the low
		// fallback confidence since it is syntactically plausible.
		require.Len(t, findings.Emails, 1)
		assert.InDelta(t, emailFallbackConfidence, findings.Emails[0].Confidence, 1e-9)
	})

	t.Run("Success - generic mailbox on brand domain", func(t *testing.T) {
		srv := fakeSerper(t, []serperOrganic{
			{Snippet: "Email the team at office@remax.com"},
		})
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Name: "Bob Jones"})

		require.Len(t, findings.Emails, 1)
		assert.InDelta(t, emailBrandConfidence, findings.Emails[0].Confidence, 1e-9)
	})

	t.Run("Success - formatted phone scores above loose phone", func(t *testing.T) {
		srv := fakeSerper(t, []serperOrganic{
			{Snippet: "Call the office at (212) 555-0123 today"},
		})
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Name: "Jane Smith"})

		require.Len(t, findings.Phones, 1)
		p := findings.Phones[0]
		assert.Equal(t, "search", p.Source)
		// Formatted base minus the "office" context penalty.
		assert.InDelta(t, phoneBaseFormatted-phoneContextAdjust, p.Confidence, 0.20)
	})

	t.Run("Success - toll free number is penalized", func(t *testing.T) {
		srv := fakeSerper(t, []serperOrganic{
			{Snippet: "Main line (800) 555-0199"},
		})
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Name: "Jane Smith"})

		require.Len(t, findings.Phones, 1)
		assert.Less(t, findings.Phones[0].Confidence, phoneBaseFormatted)
	})

	t.Run("Success - empty name short circuits without queries", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			json.NewEncoder(w).Encode(serperResponse{})
		}))
		defer srv.Close()

		client := NewSearchClient("test-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Company: "Acme Realty"})

		assert.False(t, called)
		assert.Empty(t, findings.Emails)
		assert.Empty(t, findings.Phones)
	})

	t.Run("Failure - API error yields empty findings, not an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		client := NewSearchClient("bad-key", nil).WithEndpoint(srv.URL)
		findings := client.Search(context.Background(), SearchQuery{Name: "Jane Smith"})

		require.NotNil(t, findings)
		assert.Empty(t, findings.Emails)
		assert.Empty(t, findings.Phones)
	})
}

func TestBuildQueries(t *testing.T) {
	t.Run("Success - company and location produce four queries", func(t *testing.T) {
		queries := buildQueries(SearchQuery{
			Name:    "Jane Smith",
			Company: "Acme Realty",
			City:    "Austin",
			State:   "TX",
		})
		assert.Len(t, queries, 4)
		for _, q := range queries {
			assert.Contains(t, q, "Jane Smith")
		}
	})

	t.Run("Success - name only falls back to one query per intent", func(t *testing.T) {
		queries := buildQueries(SearchQuery{Name: "Jane Smith"})
		assert.Len(t, queries, 2)
	})
}

func TestScorePhone_Clamping(t *testing.T) {
	// A formatted mobile with boost words cannot exceed 1.0.
	conf := clampConfidence(phoneBaseFormatted + phoneMobileBoost + phoneContextAdjust)
	assert.LessOrEqual(t, conf, 1.0)

	// A loose toll-free round-tail with a penalty word cannot go below 0.
	conf = clampConfidence(phoneBaseLoose - phoneTollFreePenalty - phoneRoundTailPenalty - phoneContextAdjust)
	assert.GreaterOrEqual(t, conf, 0.0)
}

func TestScoreEmail(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		owner      string
		want       float64
		acceptable bool
	}{
		{"personal with name match", "jane.smith@gmail.com", "Jane Smith", emailBaseConfidence + emailNameMatchBoost, true},
		{"personal without name match", "someone@gmail.com", "Jane Smith", emailBaseConfidence, true},
		{"generic with name in address", "info@janesmithhomes.com", "Jane Smith", emailGenericNameConfidence, true},
		{"generic on brand domain", "office@kw.com", "Jane Smith", emailBrandConfidence, true},
		{"generic plausible fallback", "info@unknown-site.net", "Jane Smith", emailFallbackConfidence, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := scoreEmail(tt.email, tt.owner)
			assert.Equal(t, tt.acceptable, ok)
			if tt.acceptable {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
