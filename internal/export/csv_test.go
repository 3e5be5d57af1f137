package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"seller-scout/internal/research"
	"seller-scout/internal/shopee"
)

func TestCSV_BOMPrefix(t *testing.T) {
	t.Parallel()

	out, err := CSV(Table{Columns: []string{"a"}, Rows: [][]string{{"1"}}})
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))
}

func TestCSV_JapaneseRoundTrip(t *testing.T) {
	t.Parallel()

	out, err := CSV(Table{
		Columns: []string{"title", "shop"},
		Rows:    [][]string{{"【新品】ゴルフクラブ", "店舗、テスト"}},
	})
	require.NoError(t, err)

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, []byte{0xEF, 0xBB, 0xBF})))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"title", "shop"},
		{"【新品】ゴルフクラブ", "店舗、テスト"},
	}, records)
}

func TestShopSummaryTable(t *testing.T) {
	t.Parallel()

	tab := ShopSummaryTable([]research.ShopSummary{{
		ShopName:  "golfpro",
		ShopURL:   "https://shopee.co.jp/golfpro",
		Preferred: true,
		Location:  "Japan",
		TotalSold: 42,
		ItemCount: 3,
	}})

	require.Equal(t, []string{"shop_name", "shop_url", "preferred", "location", "total_sold", "item_count"}, tab.Columns)
	require.Equal(t, [][]string{{"golfpro", "https://shopee.co.jp/golfpro", "YES", "Japan", "42", "3"}}, tab.Rows)
}

func TestCategoryTable_ASINColumnsOptional(t *testing.T) {
	t.Parallel()

	rows := []research.CategoryRow{{
		Item: shopee.Item{Title: "x", Price: 2.5, ShopName: "s"},
		ASIN: "B0ABC12345", AmazonURL: "https://www.amazon.co.jp/dp/B0ABC12345",
	}}

	plain := CategoryTable(rows, false)
	require.Len(t, plain.Columns, 6)
	require.Len(t, plain.Rows[0], 6)

	enriched := CategoryTable(rows, true)
	require.Equal(t, "asin", enriched.Columns[6])
	require.Equal(t, "B0ABC12345", enriched.Rows[0][6])
	require.Equal(t, "2.5", enriched.Rows[0][3])
}

func TestSpecialistTable_RatingOneDecimal(t *testing.T) {
	t.Parallel()

	tab := SpecialistTable([]research.SpecialistCandidate{{Keyword: "golf", Rating: 4.7}})
	require.Equal(t, "4.7", tab.Rows[0][8])
}

func TestASINTable_EmptyIdentifierStaysEmpty(t *testing.T) {
	t.Parallel()

	tab := ASINTable([]research.ASINRow{{ShopName: "s", Title: "t"}})
	require.Equal(t, "", tab.Rows[0][6])
	require.Equal(t, "", tab.Rows[0][7])
}
