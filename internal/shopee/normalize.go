package shopee

import "fmt"

// priceScale converts Shopee's fixed-point integer prices to yen. The
// scale is a platform invariant.
const priceScale = 100_000

// LocaleJapan is the exact shop_location value the Japan-only filter
// matches against.
const LocaleJapan = "Japan"

// Item is one normalized marketplace listing. Immutable once built;
// records that fail normalization are dropped rather than represented.
type Item struct {
	ShopID    int64
	ShopName  string
	ShopURL   string
	ItemID    int64
	ItemURL   string
	Title     string
	Sold      int64
	Price     float64
	Preferred bool
	Location  string
}

// Normalize shapes one raw search record into an Item. ok is false when
// the record is structurally malformed (no item_basic, empty title) or
// filtered out by the locale gate.
func Normalize(raw SearchItem, baseURL string, japanOnly bool) (Item, bool) {
	basic := raw.ItemBasic
	if basic == nil || basic.Name == "" {
		return Item{}, false
	}
	if japanOnly && basic.ShopLocation != LocaleJapan {
		return Item{}, false
	}

	return Item{
		ShopID:    basic.ShopID,
		ShopName:  basic.ShopName,
		ShopURL:   ShopURL(baseURL, basic.ShopName),
		ItemID:    basic.ItemID,
		ItemURL:   ItemURL(baseURL, basic.ShopName, basic.ShopID, basic.ItemID),
		Title:     basic.Name,
		Sold:      basic.HistoricalSold,
		Price:     float64(basic.Price) / priceScale,
		Preferred: basic.IsPreferredPlusSeller,
		Location:  basic.ShopLocation,
	}, true
}

// ShopURL derives a shop's storefront URL from its name.
func ShopURL(baseURL, shopName string) string {
	return fmt.Sprintf("%s/%s", baseURL, shopName)
}

// ItemURL derives a listing URL from the shop name and the shop/item id
// pair, matching Shopee's "-i.<shopid>.<itemid>" path scheme.
func ItemURL(baseURL, shopName string, shopID, itemID int64) string {
	return fmt.Sprintf("%s/%s-i.%d.%d", baseURL, shopName, shopID, itemID)
}

// CatalogPrice converts a catalog record's raw price to yen.
func CatalogPrice(raw int64) float64 {
	return float64(raw) / priceScale
}
