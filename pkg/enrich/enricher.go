package enrich

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/promarkhq/marketingdb/pkg/logger"
)

// Fixed source confidences used when ranking candidates across sources. A
// hit on the contact's own website or social page is near-certain to belong
// to them, so these generally outrank search-derived scores.
const (
	websiteSourceConfidence = 0.90
	socialSourceConfidence  = 0.95
)

// ErrMissingSearchKey is returned when the enricher is constructed without
// the required search API key.
var ErrMissingSearchKey = errors.New("search API key is required for enrichment")

// notFoundSentinels are placeholder values that sometimes survive upstream
// imports; they are treated the same as an empty field.
var notFoundSentinels = map[string]bool{
	"not found": true,
	"n/a":       true,
	"na":        true,
	"none":      true,
	"null":      true,
	"-":         true,
}

// ContactFields carries the known input fields of a contact into enrichment.
type ContactFields struct {
	Name        string
	Company     string
	City        string
	State       string
	Phone       string
	Email       string
	Website     string
	FacebookURL string
}

// Result is the outcome of enriching one contact.
type Result struct {
	Original ContactFields `json:"original_data"`
	Findings Findings      `json:"enrichment_results"`
}

// Searcher queries a search engine for contact candidates.
type Searcher interface {
	Search(ctx context.Context, q SearchQuery) *SearchFindings
}

// Scraper extracts contact data from a website.
type Scraper interface {
	Scrape(ctx context.Context, url string) *WebsiteFindings
}

// PageFetcher fetches public profile data from a social page.
type PageFetcher interface {
	Configured() bool
	PageData(ctx context.Context, profileURL string) *SocialFindings
}

// Verifier classifies a candidate email address.
type Verifier interface {
	Configured() bool
	Validate(ctx context.Context, email string) *ValidationFindings
}

// Enricher fans out to the sources for one contact and merges their outputs.
type Enricher struct {
	search   Searcher
	scraper  Scraper
	pages    PageFetcher
	verifier Verifier
	log      logger.Logger
}

// Config holds the credentials and tuning for the real source clients.
type Config struct {
	SerperAPIKey        string
	FacebookAccessToken string
	ZeroBounceAPIKey    string
	FetchTimeout        time.Duration
	Logger              logger.Logger
}

// NewEnricher wires the real source clients. The search API key is the one
// hard requirement; a missing social token or validator key only disables
// that source.
func NewEnricher(cfg Config) (*Enricher, error) {
	if cfg.SerperAPIKey == "" {
		return nil, ErrMissingSearchKey
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	return &Enricher{
		search:   NewSearchClient(cfg.SerperAPIKey, log),
		scraper:  NewSiteScraper(cfg.FetchTimeout, log),
		pages:    NewPageClient(cfg.FacebookAccessToken, log),
		verifier: NewEmailVerifier(cfg.ZeroBounceAPIKey, log),
		log:      log,
	}, nil
}

// NewEnricherWithClients wires injected source implementations (used in
// tests and by callers that bring their own clients).
func NewEnricherWithClients(search Searcher, scraper Scraper, pages PageFetcher, verifier Verifier, log logger.Logger) *Enricher {
	if log == nil {
		log = logger.Default()
	}
	return &Enricher{search: search, scraper: scraper, pages: pages, verifier: verifier, log: log}
}

// Enrich runs every applicable source for the contact and merges the
// findings. Missing or failing sources never produce an error; the per-source
// clients already swallow their own failures.
func (e *Enricher) Enrich(ctx context.Context, fields ContactFields) *Result {
	result := &Result{Original: fields}

	if usable(fields.Name) {
		result.Findings.Search = e.search.Search(ctx, SearchQuery{
			Name:    fields.Name,
			Company: fields.Company,
			City:    fields.City,
			State:   fields.State,
			Website: fields.Website,
		})
	}

	if usable(fields.Website) {
		result.Findings.Website = e.scraper.Scrape(ctx, fields.Website)
	}

	if usable(fields.FacebookURL) && e.pages != nil && e.pages.Configured() {
		result.Findings.Social = e.pages.PageData(ctx, fields.FacebookURL)
	}

	if best := result.BestEmail(); best != nil && e.verifier != nil && e.verifier.Configured() {
		result.Findings.Validation = e.verifier.Validate(ctx, best.Value)
	}

	return result
}

// BestEmail picks the highest-confidence candidate email across sources.
// Website and social hits carry fixed confidences.
func (r *Result) BestEmail() *CandidateEmail {
	var candidates []CandidateEmail

	if r.Findings.Search != nil {
		candidates = append(candidates, r.Findings.Search.Emails...)
	}
	if r.Findings.Website != nil {
		for _, email := range r.Findings.Website.Emails {
			candidates = append(candidates, CandidateEmail{
				Value:      email,
				Source:     "website",
				Confidence: websiteSourceConfidence,
			})
		}
	}
	if r.Findings.Social != nil {
		for _, email := range r.Findings.Social.Emails {
			candidates = append(candidates, CandidateEmail{
				Value:      email,
				Source:     "social",
				Confidence: socialSourceConfidence,
			})
		}
	}

	candidates = dedupeEmails(candidates)
	var best *CandidateEmail
	for i := range candidates {
		if best == nil || candidates[i].Confidence > best.Confidence {
			best = &candidates[i]
		}
	}
	return best
}

// BestPhone picks the highest-confidence candidate phone across sources,
// with the same fixed confidences for website and social hits.
func (r *Result) BestPhone() *CandidatePhone {
	var candidates []CandidatePhone

	if r.Findings.Search != nil {
		candidates = append(candidates, r.Findings.Search.Phones...)
	}
	if r.Findings.Website != nil {
		for _, p := range r.Findings.Website.Phones {
			candidates = append(candidates, CandidatePhone{
				Value:      p,
				Source:     "website",
				Confidence: websiteSourceConfidence,
			})
		}
	}
	if r.Findings.Social != nil && r.Findings.Social.Phone != "" {
		candidates = append(candidates, CandidatePhone{
			Value:      r.Findings.Social.Phone,
			Source:     "social",
			Confidence: socialSourceConfidence,
		})
	}

	candidates = dedupePhones(candidates)
	var best *CandidatePhone
	for i := range candidates {
		if best == nil || candidates[i].Confidence > best.Confidence {
			best = &candidates[i]
		}
	}
	return best
}

// usable reports whether a field holds a real value rather than a blank or a
// placeholder sentinel.
func usable(v string) bool {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return false
	}
	return !notFoundSentinels[strings.ToLower(trimmed)]
}
