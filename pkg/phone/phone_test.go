package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Success - Valid US number", func(t *testing.T) {
		p, err := Parse("(212) 555-0123", "US")
		require.NoError(t, err)
		assert.True(t, p.IsValid)
		assert.Equal(t, "+12125550123", p.E164Format)
		assert.Equal(t, "(212) 555-0123", p.NationalFormat)
		assert.Equal(t, "US", p.Region)
	})

	t.Run("Success - Toll-free number classified", func(t *testing.T) {
		p, err := Parse("800-555-0199", "US")
		require.NoError(t, err)
		assert.True(t, p.IsValid)
		assert.Equal(t, TypeTollFree, p.Type)
	})

	t.Run("Success - Region defaults to US", func(t *testing.T) {
		p, err := Parse("212-555-0123", "")
		require.NoError(t, err)
		assert.Equal(t, "+12125550123", p.E164Format)
	})

	t.Run("Failure - Empty input", func(t *testing.T) {
		_, err := Parse("", "US")
		require.Error(t, err)
	})

	t.Run("Failure - Unparseable input", func(t *testing.T) {
		_, err := Parse("not a phone", "US")
		require.Error(t, err)
	})
}

func TestNationalFormat(t *testing.T) {
	t.Run("Success - Normalizes to national format", func(t *testing.T) {
		got, err := NationalFormat("+12125550123", "US")
		require.NoError(t, err)
		assert.Equal(t, "(212) 555-0123", got)
	})

	t.Run("Failure - Invalid number rejected", func(t *testing.T) {
		_, err := NationalFormat("123", "US")
		require.Error(t, err)
	})
}
