package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeEmails(t *testing.T) {
	t.Run("Success - keeps highest confidence per value", func(t *testing.T) {
		in := []CandidateEmail{
			{Value: "jane@example.com", Source: "search", Confidence: 0.70},
			{Value: "jane@example.com", Source: "website", Confidence: 0.90},
			{Value: "other@example.com", Source: "search", Confidence: 0.30},
		}

		out := dedupeEmails(in)
		require.Len(t, out, 2)
		assert.Equal(t, "jane@example.com", out[0].Value)
		assert.Equal(t, "website", out[0].Source)
		assert.InDelta(t, 0.90, out[0].Confidence, 1e-9)
	})

	t.Run("Success - idempotent", func(t *testing.T) {
		in := []CandidateEmail{
			{Value: "a@example.com", Confidence: 0.5},
			{Value: "b@example.com", Confidence: 0.7},
			{Value: "a@example.com", Confidence: 0.3},
		}
		once := dedupeEmails(in)
		twice := dedupeEmails(once)
		assert.Equal(t, once, twice)
	})

	t.Run("Success - empty input", func(t *testing.T) {
		assert.Empty(t, dedupeEmails(nil))
	})
}

func TestDedupePhones(t *testing.T) {
	in := []CandidatePhone{
		{Value: "(212) 555-0123", Confidence: 0.60},
		{Value: "(212) 555-0123", Confidence: 0.85, Type: "MOBILE"},
	}

	out := dedupePhones(in)
	require.Len(t, out, 1)
	assert.InDelta(t, 0.85, out[0].Confidence, 1e-9)
	assert.Equal(t, "MOBILE", out[0].Type)
}

func TestFindings_HasData(t *testing.T) {
	tests := []struct {
		name     string
		findings Findings
		want     bool
	}{
		{"empty", Findings{}, false},
		{
			"search email",
			Findings{Search: &SearchFindings{Emails: []CandidateEmail{{Value: "a@b.com"}}}},
			true,
		},
		{
			"empty search findings do not count",
			Findings{Search: &SearchFindings{Emails: []CandidateEmail{}, Phones: []CandidatePhone{}}},
			false,
		},
		{
			"scraped but nothing found does not count",
			Findings{Website: &WebsiteFindings{Scraped: true, Emails: []string{}, Phones: []string{}, SocialLinks: map[string]string{}}},
			false,
		},
		{
			"website social link",
			Findings{Website: &WebsiteFindings{SocialLinks: map[string]string{"facebook": "https://facebook.com/x"}}},
			true,
		},
		{
			"social followers",
			Findings{Social: &SocialFindings{Followers: 10}},
			true,
		},
		{
			"validation alone does not count",
			Findings{Validation: &ValidationFindings{Email: "a@b.com", Status: "valid"}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.findings.HasData())
		})
	}
}
