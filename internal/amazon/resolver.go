// Package amazon resolves Shopee listing titles to Amazon JP catalog
// identifiers (ASINs) by running a sanitized title through the Amazon
// search page and scanning the response for the first /dp/ link. This is
// the costliest per-item step in any batch flow; the shared fetch client
// enforces the spacing toward amazon.co.jp.
package amazon

import (
	"context"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"seller-scout/config"
	"seller-scout/internal/pkg/fetchclient"
)

// queryTokenLimit bounds the search query length; tokens past the first
// eight mostly hurt search relevance.
const queryTokenLimit = 8

var (
	// Bracket/punctuation noise common in Japanese listing titles.
	noiseChars = regexp.MustCompile(`[【】「」\[\]（）()]`)
	asinLink   = regexp.MustCompile(`/dp/([A-Z0-9]{10})`)
)

// Match pairs a source title with its resolved identifier. ASIN and URL
// are empty together when nothing matched.
type Match struct {
	Title string
	ASIN  string
	URL   string
}

type Resolver struct {
	baseURL string
	fetch   *fetchclient.Client
	log     *zap.SugaredLogger
}

func NewResolver(cfg config.Config, log *zap.SugaredLogger) *Resolver {
	fetch := fetchclient.New(fetchclient.Options{
		Timeout:  cfg.FetchTimeout,
		Interval: cfg.AmazonInterval,
		Headers: map[string]string{
			"User-Agent":      cfg.AmazonUserAgent,
			"Accept-Language": "ja-JP,ja;q=0.9",
		},
	}, log)

	return &Resolver{
		baseURL: cfg.AmazonBaseURL,
		fetch:   fetch,
		log:     log,
	}
}

// SanitizeTitle strips bracket noise, collapses whitespace and keeps the
// first eight tokens.
func SanitizeTitle(title string) string {
	clean := noiseChars.ReplaceAllString(title, " ")
	tokens := strings.Fields(clean)
	if len(tokens) > queryTokenLimit {
		tokens = tokens[:queryTokenLimit]
	}
	return strings.Join(tokens, " ")
}

// Resolve searches Amazon JP for the title and returns the first ASIN
// found in the result page. Fetch failures and no-match both yield a
// Match with empty ASIN and URL; this never errors.
func (r *Resolver) Resolve(ctx context.Context, title string) Match {
	m := Match{Title: title}

	query := SanitizeTitle(title)
	if query == "" {
		return m
	}

	body, ok := r.fetch.GetBody(ctx, r.baseURL+"/s", url.Values{"k": {query}})
	if !ok {
		return m
	}

	sub := asinLink.FindSubmatch(body)
	if sub == nil {
		return m
	}

	m.ASIN = string(sub[1])
	m.URL = r.baseURL + "/dp/" + m.ASIN
	return m
}
