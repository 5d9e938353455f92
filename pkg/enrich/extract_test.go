package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmails(t *testing.T) {
	t.Run("Success - lowercases and skips image filenames", func(t *testing.T) {
		text := `Reach Jane.Smith@Example.COM or see logo@2x.png and header@3x.webp`
		emails := extractEmails(text)
		assert.Equal(t, []string{"jane.smith@example.com"}, emails)
	})

	t.Run("Success - multiple emails", func(t *testing.T) {
		text := "a@x.com, b@y.org; c@z.net"
		assert.Len(t, extractEmails(text), 3)
	})

	t.Run("Success - no emails", func(t *testing.T) {
		assert.Empty(t, extractEmails("nothing to see here"))
	})
}

func TestExtractPhoneMatches(t *testing.T) {
	t.Run("Success - formatted shapes flagged", func(t *testing.T) {
		matches := extractPhoneMatches("Call (212) 555-0123 or +1 305-555-0188")
		require.Len(t, matches, 2)
		for _, m := range matches {
			assert.True(t, m.formatted)
		}
	})

	t.Run("Success - loose shapes not flagged", func(t *testing.T) {
		matches := extractPhoneMatches("Office: 212-555-0123")
		require.Len(t, matches, 1)
		assert.False(t, matches[0].formatted)
	})

	t.Run("Success - same digits matched once", func(t *testing.T) {
		matches := extractPhoneMatches("(212) 555-0123 also written 212-555-0123")
		assert.Len(t, matches, 1)
	})
}

func TestEmailMatchesName(t *testing.T) {
	assert.True(t, emailMatchesName("jane.smith@example.com", "Jane Smith"))
	assert.True(t, emailMatchesName("info@smithrealty.com", "Jane Smith"))
	assert.False(t, emailMatchesName("info@acme.com", "Jane Smith"))
	// Short tokens are ignored to avoid accidental substring hits.
	assert.False(t, emailMatchesName("joe@example.com", "Jo Li"))
}

func TestIsBrandDomain(t *testing.T) {
	assert.True(t, isBrandDomain("office@remax.com"))
	assert.True(t, isBrandDomain("team@austin.kw.com"))
	assert.False(t, isBrandDomain("office@notremax.org"))
	assert.False(t, isBrandDomain("no-at-sign"))
}

func TestHasRoundTail(t *testing.T) {
	assert.True(t, hasRoundTail("+12125550000"))
	assert.True(t, hasRoundTail("+12125555000"))
	assert.False(t, hasRoundTail("+12125550123"))
}
