package research

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"seller-scout/config"
	"seller-scout/internal/amazon"
	"seller-scout/internal/shopee"
)

const fakeBase = "https://shopee.co.jp"

// fakeMarket serves canned pages keyed the way the real API is queried.
type fakeMarket struct {
	searchPages   map[string][][]shopee.SearchItem // keyword → pages
	categoryPages map[int64][][]shopee.SearchItem  // category id → pages
	catalogs      map[int64][][]shopee.CatalogItem // shop id → pages
	profiles      map[int64]shopee.ShopProfile

	searchCalls  int
	catalogCalls int
}

func (m *fakeMarket) SearchByKeyword(_ context.Context, keyword string, page int) []shopee.SearchItem {
	m.searchCalls++
	return pageOf(m.searchPages[keyword], page)
}

func (m *fakeMarket) SearchByCategory(_ context.Context, categoryID int64, page int) []shopee.SearchItem {
	return pageOf(m.categoryPages[categoryID], page)
}

func (m *fakeMarket) ShopCatalog(_ context.Context, shopID int64, page, _ int) []shopee.CatalogItem {
	m.catalogCalls++
	return pageOf(m.catalogs[shopID], page)
}

func (m *fakeMarket) ShopProfile(_ context.Context, shopID int64) (shopee.ShopProfile, bool) {
	p, ok := m.profiles[shopID]
	return p, ok
}

func pageOf[T any](pages [][]T, page int) []T {
	if page < 0 || page >= len(pages) {
		return nil
	}
	return pages[page]
}

// fakeResolver resolves titles from a fixed table; unknown titles miss.
type fakeResolver struct {
	asins map[string]string
	calls int
}

func (r *fakeResolver) Resolve(_ context.Context, title string) amazon.Match {
	r.calls++
	m := amazon.Match{Title: title}
	if asin, ok := r.asins[title]; ok {
		m.ASIN = asin
		m.URL = "https://www.amazon.co.jp/dp/" + asin
	}
	return m
}

func newTestService(market Marketplace, resolver Resolver) *Service {
	return NewService(config.Config{ShopeeBaseURL: fakeBase}, market, resolver, zap.NewNop().Sugar())
}

func searchItem(shopID, itemID int64, sold int64, preferred bool, location string) shopee.SearchItem {
	return shopee.SearchItem{ItemBasic: &shopee.ItemBasic{
		ShopID:                shopID,
		ItemID:                itemID,
		ShopName:              fmt.Sprintf("shop%d", shopID),
		ShopLocation:          location,
		Name:                  fmt.Sprintf("item %d-%d", shopID, itemID),
		HistoricalSold:        sold,
		Price:                 100_000,
		IsPreferredPlusSeller: preferred,
	}}
}

func catalogItem(shopID, itemID, catID int64, name string) shopee.CatalogItem {
	return shopee.CatalogItem{
		ShopID:         shopID,
		ItemID:         itemID,
		Name:           name,
		HistoricalSold: 3,
		Price:          250_000,
		Categories:     []shopee.CategoryEntry{{CatID: catID}},
	}
}
