package shopee

// Raw payload shapes for the Shopee v4 endpoints we consume. Only the
// fields the pipeline reads are mapped; everything else is ignored.

type searchResponse struct {
	Items []SearchItem `json:"items"`
}

// SearchItem is one raw record from search_items. The interesting data
// lives in the nested item_basic envelope; records without it are
// structurally malformed and get dropped during normalization.
type SearchItem struct {
	ItemBasic *ItemBasic `json:"item_basic"`
}

type ItemBasic struct {
	ShopID                int64  `json:"shopid"`
	ItemID                int64  `json:"itemid"`
	ShopName              string `json:"shop_name"`
	ShopLocation          string `json:"shop_location"`
	Name                  string `json:"name"`
	HistoricalSold        int64  `json:"historical_sold"`
	Price                 int64  `json:"price"`
	IsPreferredPlusSeller bool   `json:"is_preferred_plus_seller"`
}

type catalogResponse struct {
	Items []CatalogItem `json:"items"`
}

// CatalogItem is one raw record from recommend_items (shop catalog
// listing). Unlike search results, catalog records carry their fields at
// the top level.
type CatalogItem struct {
	ShopID         int64           `json:"shopid"`
	ItemID         int64           `json:"itemid"`
	Name           string          `json:"name"`
	HistoricalSold int64           `json:"historical_sold"`
	Price          int64           `json:"price"`
	Categories     []CategoryEntry `json:"categories"`
}

type CategoryEntry struct {
	CatID int64 `json:"catid"`
}

// PrimaryCategory returns the item's first category id, or 0 when the
// category list is absent.
func (c CatalogItem) PrimaryCategory() int64 {
	if len(c.Categories) == 0 {
		return 0
	}
	return c.Categories[0].CatID
}

type profileResponse struct {
	Data *ShopProfile `json:"data"`
}

// ShopProfile holds shop-level metrics from get_shop_detail.
type ShopProfile struct {
	ShopID        int64   `json:"shopid"`
	ItemCount     int     `json:"item_count"`
	FollowerCount int64   `json:"follower_count"`
	RatingCount   int64   `json:"rating_count"`
	RatingStar    float64 `json:"rating_star"`
}
