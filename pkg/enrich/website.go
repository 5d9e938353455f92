package enrich

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/phone"
)

const defaultFetchTimeout = 10 * time.Second

// contactPagePaths are the common paths tried after the root URL.
var contactPagePaths = []string{"/contact", "/about", "/contact-us", "/about-us"}

// socialLinkPatterns match profile URLs per platform. Only the first match
// per platform is kept.
var socialLinkPatterns = map[string]*regexp.Regexp{
	"facebook":  regexp.MustCompile(`https?://(?:www\.)?facebook\.com/[A-Za-z0-9_.\-/?=&]+`),
	"twitter":   regexp.MustCompile(`https?://(?:www\.)?(?:twitter|x)\.com/[A-Za-z0-9_]+`),
	"linkedin":  regexp.MustCompile(`https?://(?:www\.)?linkedin\.com/(?:in|company)/[A-Za-z0-9_\-]+`),
	"instagram": regexp.MustCompile(`https?://(?:www\.)?instagram\.com/[A-Za-z0-9_.]+`),
}

// SiteScraper fetches a contact's claimed website and common contact pages,
// and extracts emails, phones and social links from the HTML.
type SiteScraper struct {
	httpClient *http.Client
	log        logger.Logger
}

// NewSiteScraper creates a scraper with a per-fetch timeout.
func NewSiteScraper(timeout time.Duration, log logger.Logger) *SiteScraper {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if log == nil {
		log = logger.Default()
	}
	return &SiteScraper{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Scrape fetches the root URL and the common contact-page paths. Each fetch
// has its own timeout and a failed fetch is silently skipped. Findings are
// deduplicated across pages. Scraped flips to true after the first fetch
// attempt regardless of outcome; it means "we tried", not "we found data".
func (s *SiteScraper) Scrape(ctx context.Context, rawURL string) *WebsiteFindings {
	findings := &WebsiteFindings{
		Emails:      []string{},
		Phones:      []string{},
		SocialLinks: map[string]string{},
	}

	base := normalizeSiteURL(rawURL)
	if base == "" {
		return findings
	}

	seenEmails := make(map[string]bool)
	seenPhones := make(map[string]bool)

	pages := append([]string{""}, contactPagePaths...)
	for _, path := range pages {
		findings.Scraped = true

		html, err := s.fetch(ctx, base+path)
		if err != nil {
			s.log.Debug("website fetch skipped", "url", base+path, "error", err.Error())
			continue
		}

		s.extractPage(html, findings, seenEmails, seenPhones)
	}

	return findings
}

func (s *SiteScraper) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; marketingdb/1.0)")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &httpStatusError{status: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Script and style bodies produce code-as-data false positives.
	doc.Find("script, style, noscript").Remove()

	rawHTML, err := doc.Html()
	if err != nil {
		return "", err
	}
	// Keep both the visible text and the remaining markup: mailto/social
	// links live in attributes, not text nodes.
	return doc.Text() + " " + rawHTML, nil
}

func (s *SiteScraper) extractPage(content string, findings *WebsiteFindings, seenEmails, seenPhones map[string]bool) {
	for _, email := range extractEmails(content) {
		if seenEmails[email] {
			continue
		}
		seenEmails[email] = true
		findings.Emails = append(findings.Emails, email)
	}

	for _, m := range extractPhoneMatches(content) {
		parsed, err := phone.Parse(m.raw, "US")
		if err != nil || !parsed.IsValid {
			continue
		}
		if seenPhones[parsed.NationalFormat] {
			continue
		}
		seenPhones[parsed.NationalFormat] = true
		findings.Phones = append(findings.Phones, parsed.NationalFormat)
	}

	for platform, pattern := range socialLinkPatterns {
		if _, ok := findings.SocialLinks[platform]; ok {
			continue
		}
		if match := pattern.FindString(content); match != "" {
			findings.SocialLinks[platform] = match
		}
	}
}

// normalizeSiteURL adds a scheme when missing and trims a trailing slash so
// contact-page paths can be appended.
func normalizeSiteURL(rawURL string) string {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return ""
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}
	return strings.TrimRight(url, "/")
}

type httpStatusError struct {
	status int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}
