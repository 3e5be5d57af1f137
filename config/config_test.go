package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(NewViper())
	require.NoError(t, err)

	require.Equal(t, "seller-scout", cfg.AppName)
	require.Equal(t, 8080, cfg.AppPort)
	require.Equal(t, "https://shopee.co.jp", cfg.ShopeeBaseURL)
	require.Equal(t, "https://shopee.co.jp/api/v4", cfg.ShopeeAPIURL)
	require.Equal(t, "https://www.amazon.co.jp", cfg.AmazonBaseURL)
	require.Equal(t, 500*time.Millisecond, cfg.ShopeeInterval)
	require.Equal(t, 500*time.Millisecond, cfg.AmazonInterval)
	require.Equal(t, 20*time.Second, cfg.FetchTimeout)
}

func TestNewConfig_InvalidPort(t *testing.T) {
	t.Parallel()

	v := NewViper()
	v.Set("APP_PORT", -1)

	_, err := NewConfig(v)
	require.Error(t, err)
}

func TestNewConfig_TrimsTrailingSlash(t *testing.T) {
	t.Parallel()

	v := NewViper()
	v.Set("SHOPEE_BASE_URL", "https://shopee.co.jp/")
	v.Set("AMAZON_BASE_URL", "https://www.amazon.co.jp/")

	cfg, err := NewConfig(v)
	require.NoError(t, err)
	require.Equal(t, "https://shopee.co.jp", cfg.ShopeeBaseURL)
	require.Equal(t, "https://www.amazon.co.jp", cfg.AmazonBaseURL)
}
