// Package research holds the pipeline logic: shop-level aggregation of
// normalized listings, the specialist-shop classifier, and run
// orchestration over the marketplace client and the ASIN resolver.
package research

import "seller-scout/internal/shopee"

// ShopSummary is the per-shop roll-up built during one aggregation run.
// Never persisted across runs.
type ShopSummary struct {
	ShopID    int64
	ShopName  string
	ShopURL   string
	Preferred bool
	Location  string
	TotalSold int64
	ItemCount int
}

// SpecialistCandidate is a shop that passed every classifier gate for
// one search keyword. CategoryCount comes from a bounded catalog sample
// and is an approximation, not an authoritative count.
type SpecialistCandidate struct {
	Keyword       string
	ShopID        int64
	ShopName      string
	ShopURL       string
	Preferred     bool
	CategoryCount int
	ItemCount     int
	FollowerCount int64
	ReviewCount   int64
	Rating        float64
}

// CategoryRow is one category-research result, optionally enriched with
// a resolved ASIN. ASIN and AmazonURL are empty together.
type CategoryRow struct {
	Item      shopee.Item
	ASIN      string
	AmazonURL string
}

// ASINRow is one row of the batch shop-catalog ASIN extraction.
type ASINRow struct {
	ShopName  string
	ShopURL   string
	Title     string
	ItemURL   string
	Sold      int64
	Price     float64
	ASIN      string
	AmazonURL string
}
