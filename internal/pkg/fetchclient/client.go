// Package fetchclient is the single HTTP access path to external services.
// Every call waits on a per-host rate limiter before going out, and every
// failure mode (transport error, non-2xx status, undecodable payload)
// collapses to a "no data" return. Callers never see an error from here;
// an empty result means "nothing this call", not "stop the run".
package fetchclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	http    *http.Client
	headers map[string]string
	log     *zap.SugaredLogger

	defaultInterval time.Duration

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

type Options struct {
	Timeout time.Duration
	// Headers are attached to every request.
	Headers map[string]string
	// Interval is the minimum spacing between calls to the same host.
	// Zero disables throttling (tests).
	Interval time.Duration
}

func New(opts Options, log *zap.SugaredLogger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	return &Client{
		http:    &http.Client{Timeout: timeout},
		headers: opts.Headers,
		log:     log,

		defaultInterval: opts.Interval,
		limiters:        make(map[string]*rate.Limiter),
	}
}

// GetBody performs a throttled GET and returns the raw response body.
// ok is false on any failure.
func (c *Client) GetBody(ctx context.Context, rawURL string, params url.Values) ([]byte, bool) {
	host, ok := hostOf(rawURL)
	if !ok {
		c.log.Warnw("fetch skipped, bad url", "url", rawURL)
		return nil, false
	}

	if err := c.limiter(host).Wait(ctx); err != nil {
		// Context cancelled while waiting for a slot.
		return nil, false
	}

	reqURL := rawURL
	if len(params) > 0 {
		reqURL = rawURL + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Warnw("fetch request build failed", "url", rawURL, "err", err)
		return nil, false
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("fetch failed", "host", host, "err", err)
		return nil, false
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warnw("fetch body read failed", "host", host, "err", err)
		return nil, false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warnw("fetch non-2xx", "host", host, "status", resp.StatusCode)
		return nil, false
	}

	return body, true
}

// GetJSON performs a throttled GET and decodes the body into v.
// v is left untouched when ok is false.
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values, v any) bool {
	body, ok := c.GetBody(ctx, rawURL, params)
	if !ok {
		return false
	}
	if err := json.Unmarshal(body, v); err != nil {
		c.log.Warnw("fetch payload decode failed", "url", rawURL, "err", err)
		return false
	}
	return true
}

func (c *Client) limiter(host string) *rate.Limiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lim, ok := c.limiters[host]; ok {
		return lim
	}

	lim := rate.NewLimiter(rate.Inf, 1)
	if c.defaultInterval > 0 {
		lim = rate.NewLimiter(rate.Every(c.defaultInterval), 1)
	}
	c.limiters[host] = lim
	return lim
}

func hostOf(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}
	return u.Hostname(), true
}
