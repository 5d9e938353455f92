package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteScraper_Scrape(t *testing.T) {
	t.Run("Success - extracts emails, phones and social links", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/contact" {
				http.NotFound(w, r)
				return
			}
			fmt.Fprint(w, `<html><body>
				<p>Email us: <a href="mailto:jane@acme-realty.com">jane@acme-realty.com</a></p>
				<p>Call (212) 555-0123</p>
				<a href="https://facebook.com/acmerealty">Facebook</a>
				<a href="https://instagram.com/acmerealty">Instagram</a>
			</body></html>`)
		}))
		defer srv.Close()

		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), srv.URL)

		assert.True(t, findings.Scraped)
		assert.Contains(t, findings.Emails, "jane@acme-realty.com")
		require.Len(t, findings.Phones, 1)
		assert.Equal(t, "https://facebook.com/acmerealty", findings.SocialLinks["facebook"])
		assert.Equal(t, "https://instagram.com/acmerealty", findings.SocialLinks["instagram"])
	})

	t.Run("Success - script bodies are stripped before extraction", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<script>var fake = "bot-trap@honeypot.com";</script>
				<p>Real contact: agent@acme-realty.com</p>
			</body></html>`)
		}))
		defer srv.Close()

		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), srv.URL)

		assert.Contains(t, findings.Emails, "agent@acme-realty.com")
		assert.NotContains(t, findings.Emails, "bot-trap@honeypot.com")
	})

	t.Run("Success - image filename lookalikes are dropped", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body>
				<img src="logo@2x.png">
				<p>hello@acme-realty.com</p>
			</body></html>`)
		}))
		defer srv.Close()

		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), srv.URL)

		assert.Contains(t, findings.Emails, "hello@acme-realty.com")
		for _, e := range findings.Emails {
			assert.NotContains(t, e, ".png")
		}
	})

	t.Run("Success - findings deduplicated across pages", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Same email appears on the root and every contact page.
			fmt.Fprint(w, `<html><body><p>jane@acme-realty.com</p></body></html>`)
		}))
		defer srv.Close()

		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), srv.URL)

		assert.Equal(t, []string{"jane@acme-realty.com"}, findings.Emails)
	})

	t.Run("Success - scraped is true even when every fetch fails", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), srv.URL)

		// Scraped records that fetches were attempted, not that data was
		// found.
		assert.True(t, findings.Scraped)
		assert.Empty(t, findings.Emails)
		assert.Empty(t, findings.Phones)
	})

	t.Run("Success - empty URL yields unattempted findings", func(t *testing.T) {
		scraper := NewSiteScraper(0, nil)
		findings := scraper.Scrape(context.Background(), "  ")

		assert.False(t, findings.Scraped)
		assert.Empty(t, findings.Emails)
	})
}

func TestNormalizeSiteURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "https://example.com"},
		{"http://example.com/", "http://example.com"},
		{"https://example.com//", "https://example.com"},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSiteURL(tt.in))
	}
}
