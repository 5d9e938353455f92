package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/promarkhq/marketingdb/pkg/logger"
	"github.com/promarkhq/marketingdb/pkg/phone"
)

const (
	defaultSearchEndpoint = "https://google.serper.dev/search"
	searchResultCount     = 10
	searchTimeout         = 10 * time.Second

	// Phone confidence model. The order is fixed: base value, then additive
	// adjustments, then clamp to [0, 1].
	phoneBaseFormatted    = 0.80 // matched a strictly formatted pattern
	phoneBaseLoose        = 0.70 // matched a loose pattern
	phoneMobileBoost      = 0.15
	phoneTollFreePenalty  = 0.25
	phoneRoundTailPenalty = 0.10
	phoneContextAdjust    = 0.10

	// Email confidence model.
	emailBaseConfidence        = 0.70 // personal-looking mailbox
	emailNameMatchBoost        = 0.15
	emailGenericNameConfidence = 0.75 // generic mailbox but the contact's name appears in it
	emailBrandConfidence       = 0.55 // generic mailbox on a known brokerage domain
	emailFallbackConfidence    = 0.30 // syntactically plausible, nothing else going for it
)

// tollFreeAreaCodes are North American toll-free prefixes. A number in one of
// these ranges is almost never a person's direct line.
var tollFreeAreaCodes = map[string]bool{
	"800": true, "833": true, "844": true, "855": true,
	"866": true, "877": true, "888": true,
}

var roundTailPattern = regexp.MustCompile(`\d000$`)

var (
	phoneBoostWords   = []string{"cell", "mobile", "direct"}
	phonePenaltyWords = []string{"office", "switchboard", "fax"}
)

// SearchQuery carries the contact fields a search is built from. Name is
// required; everything else narrows the queries when present.
type SearchQuery struct {
	Name    string
	Company string
	City    string
	State   string
	Website string
}

// SearchClient queries a Serper-style search API and extracts candidate
// emails and phone numbers from result snippets.
type SearchClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
	log        logger.Logger
}

// NewSearchClient creates a search client. The rate limit guards the vendor's
// per-second quota, not correctness.
func NewSearchClient(apiKey string, log logger.Logger) *SearchClient {
	if log == nil {
		log = logger.Default()
	}
	return &SearchClient{
		apiKey:     apiKey,
		endpoint:   defaultSearchEndpoint,
		httpClient: &http.Client{Timeout: searchTimeout},
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		log:        log,
	}
}

// WithEndpoint overrides the search API endpoint (used in tests).
func (c *SearchClient) WithEndpoint(endpoint string) *SearchClient {
	c.endpoint = endpoint
	return c
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

type serperOrganic struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
}

type serperResponse struct {
	Organic       []serperOrganic `json:"organic"`
	PeopleAlsoAsk []struct {
		Snippet string `json:"snippet"`
	} `json:"peopleAlsoAsk"`
}

// Search runs the built queries and aggregates candidates. Individual query
// failures are logged and skipped; when everything fails the findings are
// simply empty. Search never returns an error to the caller.
func (c *SearchClient) Search(ctx context.Context, q SearchQuery) *SearchFindings {
	findings := &SearchFindings{
		Emails:  []CandidateEmail{},
		Phones:  []CandidatePhone{},
		Sources: []string{},
	}

	if strings.TrimSpace(q.Name) == "" {
		return findings
	}

	queries := buildQueries(q)
	seenSources := make(map[string]bool)

	for _, query := range queries {
		resp, err := c.doSearch(ctx, query)
		if err != nil {
			c.log.Warn("search query failed", "query", query, "error", err.Error())
			continue
		}

		for _, organic := range resp.Organic {
			text := organic.Title + " " + organic.Snippet
			c.collectEmails(findings, text, organic.Link, q.Name)
			c.collectPhones(findings, text, organic.Link)
			if organic.Link != "" && !seenSources[organic.Link] {
				seenSources[organic.Link] = true
				findings.Sources = append(findings.Sources, organic.Link)
			}
		}
		for _, paa := range resp.PeopleAlsoAsk {
			c.collectEmails(findings, paa.Snippet, "", q.Name)
			c.collectPhones(findings, paa.Snippet, "")
		}
	}

	findings.Emails = dedupeEmails(findings.Emails)
	findings.Phones = dedupePhones(findings.Phones)
	return findings
}

// buildQueries assembles at most two email-oriented and two phone-oriented
// queries from the available fields.
func buildQueries(q SearchQuery) []string {
	var queries []string

	location := strings.TrimSpace(q.City + " " + q.State)

	for _, intent := range []string{"email", "phone number"} {
		count := 0
		if q.Company != "" {
			queries = append(queries, fmt.Sprintf("%q %q %s", q.Name, q.Company, intent))
			count++
		}
		if location != "" {
			queries = append(queries, fmt.Sprintf("%q %s realtor %s contact", q.Name, location, intent))
			count++
		}
		if count == 0 {
			queries = append(queries, fmt.Sprintf("%q %s contact", q.Name, intent))
		}
	}
	return queries
}

func (c *SearchClient) doSearch(ctx context.Context, query string) (*serperResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(serperRequest{Q: query, Num: searchResultCount})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var parsed serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed decoding search response: %w", err)
	}
	return &parsed, nil
}

func (c *SearchClient) collectEmails(findings *SearchFindings, text, link, name string) {
	for _, email := range extractEmails(text) {
		confidence, ok := scoreEmail(email, name)
		if !ok {
			continue
		}
		findings.Emails = append(findings.Emails, CandidateEmail{
			Value:      email,
			Source:     "search",
			Link:       link,
			Confidence: confidence,
		})
	}
}

func (c *SearchClient) collectPhones(findings *SearchFindings, text, link string) {
	for _, m := range extractPhoneMatches(text) {
		parsed, err := phone.Parse(m.raw, "US")
		if err != nil || !parsed.IsValid {
			continue
		}
		findings.Phones = append(findings.Phones, CandidatePhone{
			Value:      parsed.NationalFormat,
			Source:     "search",
			Link:       link,
			Confidence: scorePhone(parsed, m, text),
			Type:       string(parsed.Type),
		})
	}
}

// scoreEmail decides whether a candidate email is acceptable and at what
// confidence. Generic office mailboxes are rejected unless the contact's name
// appears in the address, the domain is a known brokerage brand, or the value
// is at least syntactically plausible — the last case only earns a
// low-confidence fallback.
func scoreEmail(email, name string) (float64, bool) {
	if !isGenericLocalPart(email) {
		confidence := emailBaseConfidence
		if emailMatchesName(email, name) {
			confidence += emailNameMatchBoost
		}
		return clampConfidence(confidence), true
	}

	switch {
	case emailMatchesName(email, name):
		return emailGenericNameConfidence, true
	case isBrandDomain(email):
		return emailBrandConfidence, true
	case isPlausibleEmail(email):
		return emailFallbackConfidence, true
	default:
		return 0, false
	}
}

// scorePhone computes the confidence for a phone candidate: base value by
// match strictness, then the documented additive adjustments, then clamp.
func scorePhone(parsed *phone.Parsed, m phoneMatch, context string) float64 {
	confidence := phoneBaseLoose
	if m.formatted {
		confidence = phoneBaseFormatted
	}

	if parsed.Type == phone.TypeMobile {
		confidence += phoneMobileBoost
	}
	if isTollFree(parsed) {
		confidence -= phoneTollFreePenalty
	}
	if hasRoundTail(parsed.E164Format) {
		confidence -= phoneRoundTailPenalty
	}

	lower := strings.ToLower(context)
	for _, w := range phoneBoostWords {
		if strings.Contains(lower, w) {
			confidence += phoneContextAdjust
			break
		}
	}
	for _, w := range phonePenaltyWords {
		if strings.Contains(lower, w) {
			confidence -= phoneContextAdjust
			break
		}
	}

	return clampConfidence(confidence)
}

// isTollFree checks both the parser's classification and the North American
// area-code ranges, since loose matches sometimes parse as FIXED_LINE.
func isTollFree(parsed *phone.Parsed) bool {
	if parsed.Type == phone.TypeTollFree {
		return true
	}
	digits := digitsOnly(parsed.E164Format)
	if strings.HasPrefix(digits, "1") && len(digits) == 11 {
		return tollFreeAreaCodes[digits[1:4]]
	}
	return false
}

// hasRoundTail reports whether the last four digits are a round pattern like
// 0000 or 5000, which usually marks a main office line.
func hasRoundTail(e164 string) bool {
	digits := digitsOnly(e164)
	if len(digits) < 4 {
		return false
	}
	return roundTailPattern.MatchString(digits)
}
