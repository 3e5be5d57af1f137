package research

import (
	"sort"

	"seller-scout/internal/shopee"
)

// ShopFilters are the shop-discovery gates. MinSold and PreferredOnly
// apply per item before folding; MinItemCount drops shops after the
// fold (0 means no floor).
type ShopFilters struct {
	MinSold       int64
	PreferredOnly bool
	MinItemCount  int
}

func passesItemGates(it shopee.Item, f ShopFilters) bool {
	if it.Sold < f.MinSold {
		return false
	}
	if f.PreferredOnly && !it.Preferred {
		return false
	}
	return true
}

// AggregateShops folds a stream of normalized items into per-shop
// roll-ups, gated per item, then filters and ranks the shops. Output is
// sorted descending by total sold; ties keep first-seen order (the sort
// is stable and no secondary key is defined).
func AggregateShops(items []shopee.Item, f ShopFilters) []ShopSummary {
	byShop := make(map[int64]*ShopSummary)
	var order []int64

	for _, it := range items {
		if !passesItemGates(it, f) {
			continue
		}

		s, ok := byShop[it.ShopID]
		if !ok {
			s = &ShopSummary{
				ShopID:    it.ShopID,
				ShopName:  it.ShopName,
				ShopURL:   it.ShopURL,
				Preferred: it.Preferred,
				Location:  it.Location,
			}
			byShop[it.ShopID] = s
			order = append(order, it.ShopID)
		}
		s.TotalSold += it.Sold
		s.ItemCount++
	}

	out := make([]ShopSummary, 0, len(order))
	for _, id := range order {
		s := byShop[id]
		if f.MinItemCount > 0 && s.ItemCount < f.MinItemCount {
			continue
		}
		out = append(out, *s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalSold > out[j].TotalSold
	})

	return out
}
