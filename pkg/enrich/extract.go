package enrich

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Regional phone shapes seen in US/CA listing pages. Order matters: the
	// formatted shapes are tried first and get the higher base confidence.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-.\s]\d{4}`),        // (212) 555-0123
		regexp.MustCompile(`\+1[-.\s]?\d{3}[-.\s]\d{3}[-.\s]\d{4}`), // +1 212-555-0123
		regexp.MustCompile(`\b\d{3}[-.]\d{3}[-.]\d{4}\b`),          // 212-555-0123
		regexp.MustCompile(`\b\d{3}\s\d{3}\s\d{4}\b`),              // 212 555 0123
	}

	// Image filenames embedded in HTML frequently match the email pattern
	// (logo@2x.png and friends).
	imageSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp"}
)

// genericLocalParts are mailbox names that usually belong to an office, not a
// person. They are rejected unless an acceptance exception applies.
var genericLocalParts = map[string]bool{
	"info":    true,
	"contact": true,
	"sales":   true,
	"support": true,
	"admin":   true,
	"office":  true,
	"team":    true,
	"hello":   true,
}

// brandDomains are real-estate brokerage domains where a generic mailbox is
// still usually routed to the named agent's team.
var brandDomains = []string{
	"remax.com",
	"kw.com",
	"kellerwilliams.com",
	"coldwellbanker.com",
	"century21.com",
	"exprealty.com",
	"compass.com",
	"sothebysrealty.com",
	"bhhs.com",
	"redfin.com",
}

// extractEmails pulls email-like substrings out of free text, dropping
// image-filename false positives. Values are lowercased.
func extractEmails(text string) []string {
	matches := emailPattern.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		lower := strings.ToLower(m)
		if hasImageSuffix(lower) {
			continue
		}
		out = append(out, lower)
	}
	return out
}

// phoneMatch is a raw phone substring plus whether it matched one of the
// strictly formatted patterns.
type phoneMatch struct {
	raw       string
	formatted bool
}

// extractPhoneMatches pulls phone-like substrings out of free text.
func extractPhoneMatches(text string) []phoneMatch {
	seen := make(map[string]bool)
	var out []phoneMatch
	for i, pattern := range phonePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			key := digitsOnly(m)
			// The same number with and without the +1 prefix is one number.
			if len(key) == 11 && key[0] == '1' {
				key = key[1:]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, phoneMatch{raw: m, formatted: i < 2})
		}
	}
	return out
}

func hasImageSuffix(s string) bool {
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isGenericLocalPart reports whether the mailbox name before the @ is a
// generic office mailbox.
func isGenericLocalPart(email string) bool {
	at := strings.Index(email, "@")
	if at < 0 {
		return false
	}
	return genericLocalParts[strings.ToLower(email[:at])]
}

// isBrandDomain reports whether the email's domain belongs to a known
// brokerage brand.
func isBrandDomain(email string) bool {
	at := strings.Index(email, "@")
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, b := range brandDomains {
		if domain == b || strings.HasSuffix(domain, "."+b) {
			return true
		}
	}
	return false
}

// isPlausibleEmail reports whether a string is syntactically a usable email:
// it has an @ and a dotted domain.
func isPlausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// nameTokens splits a contact name into lowercase tokens long enough to be
// meaningful when matched against an email address.
func nameTokens(name string) []string {
	var out []string
	for _, tok := range strings.Fields(strings.ToLower(name)) {
		tok = strings.Trim(tok, ".,")
		if len(tok) >= 3 {
			out = append(out, tok)
		}
	}
	return out
}

// emailMatchesName reports whether any token of the contact's name appears in
// the email address.
func emailMatchesName(email, name string) bool {
	lower := strings.ToLower(email)
	for _, tok := range nameTokens(name) {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// clampConfidence bounds a confidence score to [0, 1].
func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
