package fetchclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(headers map[string]string) *Client {
	return New(Options{Timeout: 5 * time.Second, Headers: headers}, zap.NewNop().Sugar())
}

func TestGetJSON_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "golf", r.URL.Query().Get("keyword"))
		require.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		w.Write([]byte(`{"items":[{"id":1}]}`))
	}))
	defer srv.Close()

	c := newTestClient(map[string]string{"User-Agent": "test-agent"})

	var got struct {
		Items []map[string]int `json:"items"`
	}
	ok := c.GetJSON(context.Background(), srv.URL, url.Values{"keyword": {"golf"}}, &got)
	require.True(t, ok)
	require.Len(t, got.Items, 1)
}

func TestGetJSON_ServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(nil)

	var got map[string]any
	ok := c.GetJSON(context.Background(), srv.URL, nil, &got)
	require.False(t, ok)
	require.Empty(t, got)
}

func TestGetJSON_MalformedPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<!doctype html><p>captcha</p>`))
	}))
	defer srv.Close()

	c := newTestClient(nil)

	var got map[string]any
	ok := c.GetJSON(context.Background(), srv.URL, nil, &got)
	require.False(t, ok)
}

func TestGetBody_TransportError(t *testing.T) {
	t.Parallel()

	c := newTestClient(nil)

	// Closed server: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, ok := c.GetBody(context.Background(), srv.URL, nil)
	require.False(t, ok)
}

func TestGetBody_BadURL(t *testing.T) {
	t.Parallel()

	c := newTestClient(nil)
	_, ok := c.GetBody(context.Background(), "::not-a-url", nil)
	require.False(t, ok)
}

func TestGetBody_ThrottlesPerHost(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(Options{Timeout: 5 * time.Second, Interval: 50 * time.Millisecond}, zap.NewNop().Sugar())

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, ok := c.GetBody(context.Background(), srv.URL, nil)
		require.True(t, ok)
	}
	// First call is free, the next two each wait the floor interval.
	require.GreaterOrEqual(t, time.Since(start), 100*time.Millisecond)
}

func TestGetBody_CancelledWhileWaiting(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := New(Options{Timeout: 5 * time.Second, Interval: time.Hour}, zap.NewNop().Sugar())

	_, ok := c.GetBody(context.Background(), srv.URL, nil)
	require.True(t, ok)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, ok = c.GetBody(ctx, srv.URL, nil)
	require.False(t, ok)
}
