package enrich

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailVerifier_Validate(t *testing.T) {
	t.Run("Success - valid email", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
			assert.Equal(t, "jane@example.com", r.URL.Query().Get("email"))
			json.NewEncoder(w).Encode(map[string]string{
				"status":           "valid",
				"sub_status":       "",
				"zerobounce_score": "9.8",
			})
		}))
		defer srv.Close()

		verifier := NewEmailVerifier("test-key", nil).WithEndpoint(srv.URL)
		result := verifier.Validate(context.Background(), "jane@example.com")

		require.NotNil(t, result.Valid)
		assert.True(t, *result.Valid)
		assert.Equal(t, "valid", result.Status)
		assert.InDelta(t, 9.8, result.Score, 1e-9)
	})

	t.Run("Success - invalid email with suggestion", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"status":       "invalid",
				"sub_status":   "mailbox_not_found",
				"did_you_mean": "jane@gmail.com",
			})
		}))
		defer srv.Close()

		verifier := NewEmailVerifier("test-key", nil).WithEndpoint(srv.URL)
		result := verifier.Validate(context.Background(), "jane@gmial.com")

		require.NotNil(t, result.Valid)
		assert.False(t, *result.Valid)
		assert.Equal(t, "mailbox_not_found", result.SubStatus)
		assert.Equal(t, "jane@gmail.com", result.DidYouMean)
	})

	t.Run("Success - catch-all leaves Valid nil", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"status": "catch-all"})
		}))
		defer srv.Close()

		verifier := NewEmailVerifier("test-key", nil).WithEndpoint(srv.URL)
		result := verifier.Validate(context.Background(), "jane@example.com")

		assert.Nil(t, result.Valid)
		assert.Equal(t, "catch-all", result.Status)
	})

	t.Run("Failure - API error is unknown, not invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		verifier := NewEmailVerifier("test-key", nil).WithEndpoint(srv.URL)
		result := verifier.Validate(context.Background(), "jane@example.com")

		assert.Nil(t, result.Valid)
		assert.Equal(t, "error", result.Status)
	})

	t.Run("Failure - timeout is unknown, not invalid", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		verifier := NewEmailVerifier("test-key", nil).WithEndpoint(srv.URL)
		verifier.httpClient.Timeout = 50 * time.Millisecond
		result := verifier.Validate(context.Background(), "jane@example.com")

		assert.Nil(t, result.Valid)
		assert.Equal(t, "error", result.Status)
	})
}

func TestEmailVerifier_Configured(t *testing.T) {
	assert.True(t, NewEmailVerifier("key", nil).Configured())
	assert.False(t, NewEmailVerifier("", nil).Configured())
}
