package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/promarkhq/marketingdb/pkg/logger"
)

const (
	defaultValidateEndpoint = "https://api.zerobounce.net/v2/validate"
	validateTimeout         = 10 * time.Second
)

// EmailVerifier calls a third-party validation API to classify a candidate
// email.
type EmailVerifier struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	log        logger.Logger
}

// NewEmailVerifier creates an email verifier.
func NewEmailVerifier(apiKey string, log logger.Logger) *EmailVerifier {
	if log == nil {
		log = logger.Default()
	}
	return &EmailVerifier{
		apiKey:     apiKey,
		endpoint:   defaultValidateEndpoint,
		httpClient: &http.Client{Timeout: validateTimeout},
		log:        log,
	}
}

// WithEndpoint overrides the validation API endpoint (used in tests).
func (v *EmailVerifier) WithEndpoint(endpoint string) *EmailVerifier {
	v.endpoint = endpoint
	return v
}

// Configured reports whether an API key is available.
func (v *EmailVerifier) Configured() bool {
	return v.apiKey != ""
}

type zeroBounceResponse struct {
	Status     string `json:"status"`
	SubStatus  string `json:"sub_status"`
	Score      string `json:"zerobounce_score"`
	DidYouMean string `json:"did_you_mean"`
}

// Validate classifies an email address. On any failure the result carries
// status "error" and a nil Valid: absence of validation is not the same as
// invalid, and callers must preserve the distinction.
func (v *EmailVerifier) Validate(ctx context.Context, email string) *ValidationFindings {
	findings := &ValidationFindings{Email: email, Status: "error"}

	params := url.Values{}
	params.Set("api_key", v.apiKey)
	params.Set("email", email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		v.log.Warn("email validation request failed", "error", err.Error())
		return findings
	}

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.Warn("email validation call failed", "email", email, "error", err.Error())
		return findings
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.Warn("email validation returned non-200", "email", email, "status", resp.StatusCode)
		return findings
	}

	var parsed zeroBounceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		v.log.Warn("email validation decode failed", "error", fmt.Sprintf("%v", err))
		return findings
	}

	findings.Status = parsed.Status
	findings.SubStatus = parsed.SubStatus
	findings.DidYouMean = parsed.DidYouMean
	if score, err := strconv.ParseFloat(parsed.Score, 64); err == nil {
		findings.Score = score
	}

	switch parsed.Status {
	case "valid":
		valid := true
		findings.Valid = &valid
	case "invalid", "abuse", "do_not_mail", "spamtrap":
		valid := false
		findings.Valid = &valid
	default:
		// catch-all, unknown: leave Valid nil
	}

	return findings
}
