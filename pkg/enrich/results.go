package enrich

// CandidateEmail is one email found by a source, with where it came from and
// how likely it is to belong to the target contact.
type CandidateEmail struct {
	Value      string  `json:"value"`
	Source     string  `json:"source"`
	Link       string  `json:"link,omitempty"`
	Confidence float64 `json:"confidence"`
}

// CandidatePhone is one phone number found by a source. Value is the national
// format produced by the phone parser.
type CandidatePhone struct {
	Value      string  `json:"value"`
	Source     string  `json:"source"`
	Link       string  `json:"link,omitempty"`
	Confidence float64 `json:"confidence"`
	Type       string  `json:"type,omitempty"`
}

// SearchFindings holds candidates extracted from search engine results.
type SearchFindings struct {
	Emails  []CandidateEmail `json:"emails"`
	Phones  []CandidatePhone `json:"phones"`
	Sources []string         `json:"sources"`
}

// WebsiteFindings holds contact data scraped from the contact's website.
// Scraped is true once at least one fetch was attempted, whether or not any
// data was found; callers must not read it as "data found".
type WebsiteFindings struct {
	Emails      []string          `json:"emails"`
	Phones      []string          `json:"phones"`
	SocialLinks map[string]string `json:"social_links"`
	Scraped     bool              `json:"scraped"`
}

// SocialPost is one recent post with its engagement counts.
type SocialPost struct {
	Message  string `json:"message"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
}

// SocialFindings holds public profile fields fetched from a social page.
type SocialFindings struct {
	Followers int          `json:"followers"`
	About     string       `json:"about"`
	Phone     string       `json:"phone"`
	Website   string       `json:"website"`
	Emails    []string     `json:"emails"`
	Posts     []SocialPost `json:"posts"`
}

// ValidationFindings is the email validator verdict. Valid is a tri-state:
// nil means the validator was unreachable, which is distinct from invalid.
type ValidationFindings struct {
	Email      string  `json:"email"`
	Valid      *bool   `json:"valid"`
	Status     string  `json:"status"`
	SubStatus  string  `json:"sub_status,omitempty"`
	Score      float64 `json:"score"`
	DidYouMean string  `json:"did_you_mean,omitempty"`
}

// Findings aggregates per-source results for one contact. A nil field means
// that source was skipped or produced nothing.
type Findings struct {
	Search     *SearchFindings     `json:"search,omitempty"`
	Website    *WebsiteFindings    `json:"website,omitempty"`
	Social     *SocialFindings     `json:"social,omitempty"`
	Validation *ValidationFindings `json:"email_validation,omitempty"`
}

// HasData reports whether any source produced at least one usable field.
func (f *Findings) HasData() bool {
	if f.Search != nil && (len(f.Search.Emails) > 0 || len(f.Search.Phones) > 0) {
		return true
	}
	if f.Website != nil && (len(f.Website.Emails) > 0 || len(f.Website.Phones) > 0 || len(f.Website.SocialLinks) > 0) {
		return true
	}
	if f.Social != nil && (f.Social.Followers > 0 || f.Social.About != "" || f.Social.Phone != "" ||
		f.Social.Website != "" || len(f.Social.Emails) > 0 || len(f.Social.Posts) > 0) {
		return true
	}
	return false
}

// dedupeEmails collapses candidates with the same value, keeping the
// highest-confidence instance.
func dedupeEmails(candidates []CandidateEmail) []CandidateEmail {
	best := make(map[string]int, len(candidates))
	out := make([]CandidateEmail, 0, len(candidates))
	for _, c := range candidates {
		if i, ok := best[c.Value]; ok {
			if c.Confidence > out[i].Confidence {
				out[i] = c
			}
			continue
		}
		best[c.Value] = len(out)
		out = append(out, c)
	}
	return out
}

// dedupePhones collapses candidates with the same value, keeping the
// highest-confidence instance.
func dedupePhones(candidates []CandidatePhone) []CandidatePhone {
	best := make(map[string]int, len(candidates))
	out := make([]CandidatePhone, 0, len(candidates))
	for _, c := range candidates {
		if i, ok := best[c.Value]; ok {
			if c.Confidence > out[i].Confidence {
				out[i] = c
			}
			continue
		}
		best[c.Value] = len(out)
		out = append(out, c)
	}
	return out
}
