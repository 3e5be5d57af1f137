package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seller-scout/internal/shopee"
)

func TestProfileCache_NilRedisIsPassthrough(t *testing.T) {
	t.Parallel()

	c := NewProfileCache(nil, zap.NewNop().Sugar())

	_, ok := c.Get(context.Background(), 42)
	require.False(t, ok)

	// Must not panic.
	c.Set(context.Background(), shopee.ShopProfile{ShopID: 42, ItemCount: 5})

	_, ok = c.Get(context.Background(), 42)
	require.False(t, ok)
}
