// Package export renders result tables for the caller: a generic
// column/row table shape for JSON responses, and a CSV encoding that
// spreadsheet tools reopen with Japanese text intact.
package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"seller-scout/internal/research"
	"seller-scout/internal/shopee"
)

// Table is an ordered tabular result.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// utf8BOM makes common spreadsheet tools decode the file as UTF-8
// instead of the platform legacy encoding.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSV encodes the table as a BOM-prefixed UTF-8 CSV byte stream.
func CSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(t.Columns); err != nil {
		return nil, err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func ShopSummaryTable(shops []research.ShopSummary) Table {
	t := Table{Columns: []string{"shop_name", "shop_url", "preferred", "location", "total_sold", "item_count"}}
	for _, s := range shops {
		t.Rows = append(t.Rows, []string{
			s.ShopName,
			s.ShopURL,
			formatBool(s.Preferred),
			s.Location,
			strconv.FormatInt(s.TotalSold, 10),
			strconv.Itoa(s.ItemCount),
		})
	}
	return t
}

func ItemTable(items []shopee.Item) Table {
	t := Table{Columns: []string{"title", "item_url", "sold", "price", "preferred", "shop_name"}}
	for _, it := range items {
		t.Rows = append(t.Rows, []string{
			it.Title,
			it.ItemURL,
			strconv.FormatInt(it.Sold, 10),
			formatPrice(it.Price),
			formatBool(it.Preferred),
			it.ShopName,
		})
	}
	return t
}

func CategoryTable(rows []research.CategoryRow, withASIN bool) Table {
	t := ItemTable(nil)
	if withASIN {
		t.Columns = append(t.Columns, "asin", "amazon_url")
	}
	for _, r := range rows {
		row := []string{
			r.Item.Title,
			r.Item.ItemURL,
			strconv.FormatInt(r.Item.Sold, 10),
			formatPrice(r.Item.Price),
			formatBool(r.Item.Preferred),
			r.Item.ShopName,
		}
		if withASIN {
			row = append(row, r.ASIN, r.AmazonURL)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func SpecialistTable(candidates []research.SpecialistCandidate) Table {
	t := Table{Columns: []string{
		"keyword", "shop_name", "shop_url", "preferred",
		"category_count", "item_count", "follower_count", "review_count", "rating",
	}}
	for _, c := range candidates {
		t.Rows = append(t.Rows, []string{
			c.Keyword,
			c.ShopName,
			c.ShopURL,
			formatBool(c.Preferred),
			strconv.Itoa(c.CategoryCount),
			strconv.Itoa(c.ItemCount),
			strconv.FormatInt(c.FollowerCount, 10),
			strconv.FormatInt(c.ReviewCount, 10),
			strconv.FormatFloat(c.Rating, 'f', 1, 64),
		})
	}
	return t
}

func ASINTable(rows []research.ASINRow) Table {
	t := Table{Columns: []string{
		"shop_name", "shop_url", "title", "item_url", "sold", "price", "asin", "amazon_url",
	}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ShopName,
			r.ShopURL,
			r.Title,
			r.ItemURL,
			strconv.FormatInt(r.Sold, 10),
			formatPrice(r.Price),
			r.ASIN,
			r.AmazonURL,
		})
	}
	return t
}

func formatBool(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
