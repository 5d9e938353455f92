package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client, err := NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })
	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Minute))

	got, err := client.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestClient_GetMissing(t *testing.T) {
	client, _ := setupCache(t)

	_, err := client.Get(context.Background(), "absent")
	assert.True(t, IsNil(err))
}

func TestClient_Expiration(t *testing.T) {
	client, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "k")
	assert.True(t, IsNil(err))
}

func TestClient_Delete(t *testing.T) {
	client, _ := setupCache(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k", "v", 0))
	require.NoError(t, client.Delete(ctx, "k"))

	exists, err := client.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestIsNil(t *testing.T) {
	assert.False(t, IsNil(nil))
	assert.False(t, IsNil(errors.New("boom")))
}
