package shopee

// Category is one entry of the fixed research category table.
type Category struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// Categories returns the Shopee JP top-level categories offered for
// category research, in display order.
func Categories() []Category {
	return []Category{
		{ID: 11044906, Label: "Electronics（電子機器）"},
		{ID: 11044914, Label: "Fashion（ファッション）"},
		{ID: 11044916, Label: "Home & Living（ホーム）"},
		{ID: 11044932, Label: "Sports & Outdoors（スポーツ）"},
		{ID: 11044924, Label: "Toys & Games（おもちゃ）"},
		{ID: 11044956, Label: "Baby & Kids（ベビー）"},
		{ID: 11044970, Label: "Health & Beauty（美容）"},
		{ID: 11044972, Label: "Food & Beverages（食品）"},
		{ID: 11044982, Label: "Books & Stationery（本）"},
		{ID: 11044998, Label: "Automotive（自動車）"},
	}
}
