package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPageID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"legacy pages form", "https://facebook.com/pages/Acme-Realty/123456789", "123456789"},
		{"profile.php form", "https://www.facebook.com/profile.php?id=987654321", "987654321"},
		{"vanity name", "https://facebook.com/acmerealty", "acmerealty"},
		{"vanity with trailing slash", "https://facebook.com/acme.realty/", "acme.realty"},
		{"reserved path", "https://facebook.com/groups/homebuyers", ""},
		{"sharer is not a page", "https://facebook.com/sharer", ""},
		{"not a facebook URL", "https://example.com/acmerealty", ""},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPageID(tt.url))
		})
	}
}

func TestPageClient_PageData(t *testing.T) {
	t.Run("Success - profile fields and posts", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret-token", r.URL.Query().Get("access_token"))

			if strings.HasSuffix(r.URL.Path, "/posts") {
				json.NewEncoder(w).Encode(map[string]any{
					"data": []map[string]any{
						{
							"message":  "Open house this Sunday!",
							"likes":    map[string]any{"summary": map[string]any{"total_count": 42}},
							"comments": map[string]any{"summary": map[string]any{"total_count": 7}},
						},
					},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"followers_count": 1500,
				"about":           "Your local realty team",
				"phone":           "(212) 555-0123",
				"website":         "https://acme-realty.com",
				"emails":          []string{"team@acme-realty.com"},
			})
		}))
		defer srv.Close()

		client := NewPageClient("secret-token", nil).WithEndpoint(srv.URL)
		findings := client.PageData(context.Background(), "https://facebook.com/acmerealty")

		assert.Equal(t, 1500, findings.Followers)
		assert.Equal(t, "Your local realty team", findings.About)
		assert.Equal(t, "(212) 555-0123", findings.Phone)
		assert.Equal(t, "https://acme-realty.com", findings.Website)
		assert.Equal(t, []string{"team@acme-realty.com"}, findings.Emails)
		require.Len(t, findings.Posts, 1)
		assert.Equal(t, 42, findings.Posts[0].Likes)
		assert.Equal(t, 7, findings.Posts[0].Comments)
	})

	t.Run("Success - posts failure keeps profile fields", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/posts") {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{"followers_count": 300})
		}))
		defer srv.Close()

		client := NewPageClient("secret-token", nil).WithEndpoint(srv.URL)
		findings := client.PageData(context.Background(), "https://facebook.com/acmerealty")

		assert.Equal(t, 300, findings.Followers)
		assert.Empty(t, findings.Posts)
	})

	t.Run("Failure - API error yields empty findings", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewPageClient("secret-token", nil).WithEndpoint(srv.URL)
		findings := client.PageData(context.Background(), "https://facebook.com/acmerealty")

		require.NotNil(t, findings)
		assert.Zero(t, findings.Followers)
		assert.Empty(t, findings.Emails)
	})

	t.Run("Failure - unextractable page id never hits the API", func(t *testing.T) {
		called := false
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		defer srv.Close()

		client := NewPageClient("secret-token", nil).WithEndpoint(srv.URL)
		findings := client.PageData(context.Background(), "https://facebook.com/groups/homebuyers")

		assert.False(t, called)
		assert.Zero(t, findings.Followers)
	})
}

func TestPageClient_Configured(t *testing.T) {
	assert.True(t, NewPageClient("token", nil).Configured())
	assert.False(t, NewPageClient("", nil).Configured())
}
