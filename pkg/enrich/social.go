package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/promarkhq/marketingdb/pkg/logger"
)

const (
	defaultGraphEndpoint = "https://graph.facebook.com/v19.0"
	graphTimeout         = 10 * time.Second
	recentPostLimit      = 5
)

var (
	legacyPagePattern = regexp.MustCompile(`facebook\.com/pages/[^/]+/(\d+)`)
	profileIDPattern  = regexp.MustCompile(`facebook\.com/profile\.php\?id=(\d+)`)
	vanityPattern     = regexp.MustCompile(`facebook\.com/([A-Za-z0-9.\-]+)`)
)

// PageClient fetches public profile fields for a Facebook-style page.
type PageClient struct {
	accessToken string
	endpoint    string
	httpClient  *http.Client
	log         logger.Logger
}

// NewPageClient creates a page client. An empty access token is allowed;
// Configured reports it so the orchestrator can skip this source.
func NewPageClient(accessToken string, log logger.Logger) *PageClient {
	if log == nil {
		log = logger.Default()
	}
	return &PageClient{
		accessToken: accessToken,
		endpoint:    defaultGraphEndpoint,
		httpClient:  &http.Client{Timeout: graphTimeout},
		log:         log,
	}
}

// WithEndpoint overrides the Graph API endpoint (used in tests).
func (c *PageClient) WithEndpoint(endpoint string) *PageClient {
	c.endpoint = endpoint
	return c
}

// Configured reports whether an access token is available.
func (c *PageClient) Configured() bool {
	return c.accessToken != ""
}

type graphPage struct {
	FollowersCount int      `json:"followers_count"`
	About          string   `json:"about"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Emails         []string `json:"emails"`
}

type graphPosts struct {
	Data []struct {
		Message string `json:"message"`
		Likes   struct {
			Summary struct {
				TotalCount int `json:"total_count"`
			} `json:"summary"`
		} `json:"likes"`
		Comments struct {
			Summary struct {
				TotalCount int `json:"total_count"`
			} `json:"summary"`
		} `json:"comments"`
	} `json:"data"`
}

// PageData fetches profile fields and recent posts for the page behind a
// profile URL. Any failure, including an unextractable page id, yields an
// empty result; errors never propagate to the caller.
func (c *PageClient) PageData(ctx context.Context, profileURL string) *SocialFindings {
	findings := &SocialFindings{
		Emails: []string{},
		Posts:  []SocialPost{},
	}

	pageID := ExtractPageID(profileURL)
	if pageID == "" {
		return findings
	}

	var page graphPage
	fields := "followers_count,about,phone,website,emails"
	if err := c.get(ctx, fmt.Sprintf("/%s?fields=%s", pageID, fields), &page); err != nil {
		c.log.Warn("social page fetch failed", "page_id", pageID, "error", err.Error())
		return findings
	}

	findings.Followers = page.FollowersCount
	findings.About = page.About
	findings.Phone = page.Phone
	findings.Website = page.Website
	if page.Emails != nil {
		findings.Emails = page.Emails
	}

	var posts graphPosts
	path := fmt.Sprintf("/%s/posts?fields=message,likes.summary(true),comments.summary(true)&limit=%d", pageID, recentPostLimit)
	if err := c.get(ctx, path, &posts); err != nil {
		c.log.Warn("social posts fetch failed", "page_id", pageID, "error", err.Error())
		return findings
	}

	for _, p := range posts.Data {
		findings.Posts = append(findings.Posts, SocialPost{
			Message:  p.Message,
			Likes:    p.Likes.Summary.TotalCount,
			Comments: p.Comments.Summary.TotalCount,
		})
	}

	return findings
}

func (c *PageClient) get(ctx context.Context, path string, out interface{}) error {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	fullURL := c.endpoint + path + sep + "access_token=" + url.QueryEscape(c.accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("graph API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// ExtractPageID pulls a page identifier out of the known URL shapes: the
// legacy pages/name/id form, profile.php?id=N, and vanity names. Returns ""
// when no identifier can be extracted.
func ExtractPageID(profileURL string) string {
	trimmed := strings.TrimSpace(profileURL)
	if trimmed == "" {
		return ""
	}

	if m := legacyPagePattern.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	if m := profileIDPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	if m := vanityPattern.FindStringSubmatch(trimmed); m != nil {
		vanity := strings.TrimRight(m[1], "/")
		// Reserved paths are not page names.
		switch strings.ToLower(vanity) {
		case "pages", "profile.php", "groups", "events", "sharer", "share.php":
			return ""
		}
		return vanity
	}
	return ""
}
