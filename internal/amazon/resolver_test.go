package amazon

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"seller-scout/config"
)

func newTestResolver(t *testing.T, handler http.HandlerFunc) *Resolver {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewResolver(config.Config{
		AmazonBaseURL: srv.URL,
		FetchTimeout:  5 * time.Second,
	}, zap.NewNop().Sugar())
}

func TestSanitizeTitle_StripsBracketsAndTruncates(t *testing.T) {
	t.Parallel()

	require.Equal(t, "新品 Golf Club Set Driver", SanitizeTitle("【新品】Golf Club Set (Driver)"))

	long := "one two three four five six seven eight nine ten"
	require.Equal(t, "one two three four five six seven eight", SanitizeTitle(long))

	require.Equal(t, "a b", SanitizeTitle("「a」[b]"))
	require.Equal(t, "", SanitizeTitle("【】（）"))
}

func TestSanitizeTitle_NeverMoreThanEightTokens(t *testing.T) {
	t.Parallel()

	for _, title := range []string{
		"a b c d e f g h i j k",
		"【x】 y (z) w v u t s r q",
		strings.Repeat("言葉 ", 20),
	} {
		out := SanitizeTitle(title)
		require.LessOrEqual(t, len(strings.Fields(out)), 8, "title %q", title)
	}
}

func TestResolve_FirstMatchWins(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "/s", req.URL.Path)
		require.Equal(t, "新品 Golf Club Set Driver", req.URL.Query().Get("k"))
		w.Write([]byte(`<html><a href="/dp/B0ABC12345?ref=x">first</a><a href="/dp/B0XYZ99999">second</a></html>`))
	})

	m := r.Resolve(context.Background(), "【新品】Golf Club Set (Driver)")
	require.Equal(t, "B0ABC12345", m.ASIN)
	require.Equal(t, r.baseURL+"/dp/B0ABC12345", m.URL)
}

func TestResolve_NoMatch(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`<html>no results</html>`))
	})

	m := r.Resolve(context.Background(), "some title")
	require.Empty(t, m.ASIN)
	require.Empty(t, m.URL)
	require.Equal(t, "some title", m.Title)
}

func TestResolve_FetchFailure(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	m := r.Resolve(context.Background(), "some title")
	require.Empty(t, m.ASIN)
	require.Empty(t, m.URL)
}

func TestResolve_EmptyAfterSanitize(t *testing.T) {
	t.Parallel()

	called := false
	r := newTestResolver(t, func(w http.ResponseWriter, req *http.Request) {
		called = true
	})

	m := r.Resolve(context.Background(), "【】")
	require.Empty(t, m.ASIN)
	require.False(t, called, "empty query must not hit the search engine")
}
