package shopee

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testBase = "https://shopee.co.jp"

func rawItem(basic *ItemBasic) SearchItem {
	return SearchItem{ItemBasic: basic}
}

func TestNormalize_MissingBasicInfo(t *testing.T) {
	t.Parallel()

	_, ok := Normalize(rawItem(nil), testBase, false)
	require.False(t, ok)
}

func TestNormalize_EmptyTitleDropped(t *testing.T) {
	t.Parallel()

	_, ok := Normalize(rawItem(&ItemBasic{ShopID: 1, ItemID: 2}), testBase, false)
	require.False(t, ok)
}

func TestNormalize_JapanOnlyFilter(t *testing.T) {
	t.Parallel()

	overseas := rawItem(&ItemBasic{ShopID: 1, ItemID: 2, Name: "item", ShopLocation: "Mainland China"})

	_, ok := Normalize(overseas, testBase, true)
	require.False(t, ok)

	// Filter disabled: all locations pass.
	item, ok := Normalize(overseas, testBase, false)
	require.True(t, ok)
	require.Equal(t, "Mainland China", item.Location)

	domestic := rawItem(&ItemBasic{ShopID: 1, ItemID: 2, Name: "item", ShopLocation: LocaleJapan})
	item, ok = Normalize(domestic, testBase, true)
	require.True(t, ok)
	require.Equal(t, LocaleJapan, item.Location)
}

func TestNormalize_PriceScale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  int64
		want float64
	}{
		{0, 0},
		{100_000, 1},
		{129_900_000, 1299},
		{50_000, 0.5},
	}
	for _, tc := range cases {
		item, ok := Normalize(rawItem(&ItemBasic{Name: "x", Price: tc.raw}), testBase, false)
		require.True(t, ok)
		require.InDelta(t, tc.want, item.Price, 1e-9)
	}
}

func TestNormalize_DerivedURLs(t *testing.T) {
	t.Parallel()

	item, ok := Normalize(rawItem(&ItemBasic{
		ShopID:   77,
		ItemID:   123456,
		ShopName: "golfpro_jp",
		Name:     "Golf Club",
	}), testBase, false)
	require.True(t, ok)

	require.Equal(t, "https://shopee.co.jp/golfpro_jp", item.ShopURL)
	require.Equal(t, "https://shopee.co.jp/golfpro_jp-i.77.123456", item.ItemURL)
}

func TestNormalize_CarriesSellerFields(t *testing.T) {
	t.Parallel()

	item, ok := Normalize(rawItem(&ItemBasic{
		Name:                  "x",
		HistoricalSold:        321,
		IsPreferredPlusSeller: true,
	}), testBase, false)
	require.True(t, ok)
	require.Equal(t, int64(321), item.Sold)
	require.True(t, item.Preferred)
}

func TestCatalogItem_PrimaryCategory(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(0), CatalogItem{}.PrimaryCategory())
	require.Equal(t, int64(9), CatalogItem{Categories: []CategoryEntry{{CatID: 9}, {CatID: 4}}}.PrimaryCategory())
}
