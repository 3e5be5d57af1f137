// Package shopee queries the Shopee JP v4 API: keyword/category search,
// shop catalog listings and shop profiles. All calls go through the
// shared rate-limited fetch client and degrade to empty results on
// failure, so callers can treat an empty page as end-of-results.
package shopee

import (
	"context"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"seller-scout/config"
	"seller-scout/internal/pkg/fetchclient"
)

// PageSize is the fixed search page size; the page parameter on search
// calls is a zero-based multiplier of it.
const PageSize = 60

// ProfileCache lets repeat classification runs skip re-fetching shop
// profiles. A nil cache is valid and means every lookup goes out.
type ProfileCache interface {
	Get(ctx context.Context, shopID int64) (ShopProfile, bool)
	Set(ctx context.Context, profile ShopProfile)
}

type Client struct {
	apiURL   string
	fetch    *fetchclient.Client
	profiles ProfileCache
	log      *zap.SugaredLogger
}

func NewClient(cfg config.Config, profiles ProfileCache, log *zap.SugaredLogger) *Client {
	fetch := fetchclient.New(fetchclient.Options{
		Timeout:  cfg.FetchTimeout,
		Interval: cfg.ShopeeInterval,
		Headers: map[string]string{
			"User-Agent":       cfg.ShopeeUserAgent,
			"Referer":          cfg.ShopeeBaseURL + "/",
			"Accept":           "application/json",
			"X-API-SOURCE":     "pc",
			"X-Requested-With": "XMLHttpRequest",
		},
	}, log)

	return &Client{
		apiURL:   cfg.ShopeeAPIURL,
		fetch:    fetch,
		profiles: profiles,
		log:      log,
	}
}

// SearchByKeyword returns one page of keyword search results, ordered
// sales-descending by the server. An empty slice signals end-of-results
// or a failed call; either way the caller stops paging.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, page int) []SearchItem {
	params := url.Values{
		"by":        {"sales"},
		"keyword":   {keyword},
		"limit":     {strconv.Itoa(PageSize)},
		"newest":    {strconv.Itoa(page * PageSize)},
		"order":     {"desc"},
		"page_type": {"search"},
		"scenario":  {"PAGE_GLOBAL_SEARCH"},
		"version":   {"2"},
	}

	var resp searchResponse
	if !c.fetch.GetJSON(ctx, c.apiURL+"/search/search_items/", params, &resp) {
		return nil
	}
	return resp.Items
}

// SearchByCategory is SearchByKeyword keyed by category id.
func (c *Client) SearchByCategory(ctx context.Context, categoryID int64, page int) []SearchItem {
	params := url.Values{
		"by":      {"sales"},
		"limit":   {strconv.Itoa(PageSize)},
		"newest":  {strconv.Itoa(page * PageSize)},
		"order":   {"desc"},
		"catid":   {strconv.FormatInt(categoryID, 10)},
		"version": {"2"},
	}

	var resp searchResponse
	if !c.fetch.GetJSON(ctx, c.apiURL+"/search/search_items/", params, &resp) {
		return nil
	}
	return resp.Items
}

// ShopCatalog returns one page of a shop's catalog, sales-descending,
// sold-out items excluded.
func (c *Client) ShopCatalog(ctx context.Context, shopID int64, page, limit int) []CatalogItem {
	params := url.Values{
		"shopid":          {strconv.FormatInt(shopID, 10)},
		"sort_by":         {"sales"},
		"order":           {"desc"},
		"limit":           {strconv.Itoa(limit)},
		"offset":          {strconv.Itoa(page * limit)},
		"filter_sold_out": {"0"},
	}

	var resp catalogResponse
	if !c.fetch.GetJSON(ctx, c.apiURL+"/recommend/recommend_items/", params, &resp) {
		return nil
	}
	return resp.Items
}

// ShopProfile returns shop-level metrics, consulting the profile cache
// first when one is configured.
func (c *Client) ShopProfile(ctx context.Context, shopID int64) (ShopProfile, bool) {
	if c.profiles != nil {
		if p, ok := c.profiles.Get(ctx, shopID); ok {
			return p, true
		}
	}

	params := url.Values{"shopid": {strconv.FormatInt(shopID, 10)}}

	var resp profileResponse
	if !c.fetch.GetJSON(ctx, c.apiURL+"/shop/get_shop_detail/", params, &resp) {
		return ShopProfile{}, false
	}
	if resp.Data == nil {
		return ShopProfile{}, false
	}

	p := *resp.Data
	p.ShopID = shopID
	if c.profiles != nil {
		c.profiles.Set(ctx, p)
	}
	return p, true
}
