package research

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seller-scout/config"
	"seller-scout/internal/amazon"
	"seller-scout/internal/shopee"
)

// Catalog paging bounds for the batch ASIN extraction path.
const (
	asinCatalogPageSize = 100
	asinCatalogMaxPages = 6
)

// Marketplace is the slice of the Shopee client the pipeline consumes.
type Marketplace interface {
	SearchByKeyword(ctx context.Context, keyword string, page int) []shopee.SearchItem
	SearchByCategory(ctx context.Context, categoryID int64, page int) []shopee.SearchItem
	ShopCatalog(ctx context.Context, shopID int64, page, limit int) []shopee.CatalogItem
	ShopProfile(ctx context.Context, shopID int64) (shopee.ShopProfile, bool)
}

// Resolver turns a listing title into an ASIN match.
type Resolver interface {
	Resolve(ctx context.Context, title string) amazon.Match
}

// Service runs the research pipelines. Runs are sequential; cancelling
// the context between pagination or per-shop steps stops the run and
// returns whatever was collected so far.
type Service struct {
	baseURL  string
	market   Marketplace
	resolver Resolver
	log      *zap.SugaredLogger
}

func NewService(cfg config.Config, market Marketplace, resolver Resolver, log *zap.SugaredLogger) *Service {
	return &Service{
		baseURL:  cfg.ShopeeBaseURL,
		market:   market,
		resolver: resolver,
		log:      log,
	}
}

type KeywordParams struct {
	Keyword       string
	Pages         int
	JapanOnly     bool
	PreferredOnly bool
	MinSold       int64
	MinItemCount  int
}

type KeywordResult struct {
	RunID   string
	Keyword string
	Items   []shopee.Item
	Shops   []ShopSummary
}

// KeywordResearch pages through keyword search results, aggregates the
// surviving items per shop and ranks the shops by total sold.
func (s *Service) KeywordResearch(ctx context.Context, p KeywordParams) KeywordResult {
	res := KeywordResult{RunID: uuid.NewString(), Keyword: p.Keyword}
	f := ShopFilters{MinSold: p.MinSold, PreferredOnly: p.PreferredOnly, MinItemCount: p.MinItemCount}

	var items []shopee.Item
	for page := 0; page < p.Pages; page++ {
		if ctx.Err() != nil {
			break
		}
		raw := s.market.SearchByKeyword(ctx, p.Keyword, page)
		if len(raw) == 0 {
			break
		}
		for _, r := range raw {
			it, ok := shopee.Normalize(r, s.baseURL, p.JapanOnly)
			if !ok || !passesItemGates(it, f) {
				continue
			}
			items = append(items, it)
		}
	}

	res.Items = items
	res.Shops = AggregateShops(items, f)

	s.log.Infow("keyword research done",
		"run_id", res.RunID, "keyword", p.Keyword,
		"items", len(res.Items), "shops", len(res.Shops))
	return res
}

type CategoryParams struct {
	CategoryID  int64
	Pages       int
	JapanOnly   bool
	MinSold     int64
	ExtractASIN bool
}

type CategoryResult struct {
	RunID    string
	Rows     []CategoryRow
	Resolved int
}

// CategoryResearch pages through one category's best sellers, optionally
// enriching every surviving item with a resolved ASIN.
func (s *Service) CategoryResearch(ctx context.Context, p CategoryParams) CategoryResult {
	res := CategoryResult{RunID: uuid.NewString()}
	f := ShopFilters{MinSold: p.MinSold}

	for page := 0; page < p.Pages; page++ {
		if ctx.Err() != nil {
			break
		}
		raw := s.market.SearchByCategory(ctx, p.CategoryID, page)
		if len(raw) == 0 {
			break
		}
		for _, r := range raw {
			it, ok := shopee.Normalize(r, s.baseURL, p.JapanOnly)
			if !ok || !passesItemGates(it, f) {
				continue
			}
			res.Rows = append(res.Rows, CategoryRow{Item: it})
		}
	}

	if p.ExtractASIN {
		for i := range res.Rows {
			if ctx.Err() != nil {
				break
			}
			m := s.resolver.Resolve(ctx, res.Rows[i].Item.Title)
			res.Rows[i].ASIN = m.ASIN
			res.Rows[i].AmazonURL = m.URL
			if m.ASIN != "" {
				res.Resolved++
			}
		}
	}

	s.log.Infow("category research done",
		"run_id", res.RunID, "category_id", p.CategoryID,
		"rows", len(res.Rows), "resolved", res.Resolved)
	return res
}

type SpecialistParams struct {
	Keywords      []string
	Pages         int
	JapanOnly     bool
	PreferredOnly bool
	MinSold       int64
	Filters       SpecialistFilters
}

type SpecialistResult struct {
	RunID      string
	Candidates []SpecialistCandidate
	Checked    int
}

// SpecialistResearch discovers candidate shops per keyword, then runs
// each through the classifier gates. A shop is evaluated once per
// keyword it surfaced under; a shop failing classification is skipped,
// never fatal to the batch.
func (s *Service) SpecialistResearch(ctx context.Context, p SpecialistParams) SpecialistResult {
	res := SpecialistResult{RunID: uuid.NewString()}
	gates := ShopFilters{MinSold: p.MinSold, PreferredOnly: p.PreferredOnly}

	for _, keyword := range p.Keywords {
		if ctx.Err() != nil {
			break
		}

		// One candidate per shop id: the first gated item seen for it.
		seen := make(map[int64]struct{})
		var candidates []shopee.Item

		for page := 0; page < p.Pages; page++ {
			if ctx.Err() != nil {
				break
			}
			raw := s.market.SearchByKeyword(ctx, keyword, page)
			if len(raw) == 0 {
				break
			}
			for _, r := range raw {
				it, ok := shopee.Normalize(r, s.baseURL, p.JapanOnly)
				if !ok || !passesItemGates(it, gates) {
					continue
				}
				if _, dup := seen[it.ShopID]; dup {
					continue
				}
				seen[it.ShopID] = struct{}{}
				candidates = append(candidates, it)
			}
		}

		for _, shop := range candidates {
			if ctx.Err() != nil {
				break
			}
			res.Checked++
			if c, ok := s.classifyShop(ctx, keyword, shop, p.Filters); ok {
				res.Candidates = append(res.Candidates, c)
			}
		}
	}

	s.log.Infow("specialist research done",
		"run_id", res.RunID, "keywords", len(p.Keywords),
		"checked", res.Checked, "specialists", len(res.Candidates))
	return res
}

type ASINResult struct {
	RunID       string
	Rows        []ASINRow
	Resolved    int
	ShopsFailed int
}

// ResolveShopASINs walks each shop's catalog and resolves every listing
// title to an ASIN. Shop ids are recovered by searching the shop name
// and matching it against the result's seller; shops that cannot be
// resolved are counted and skipped.
func (s *Service) ResolveShopASINs(ctx context.Context, shopURLs []string) ASINResult {
	res := ASINResult{RunID: uuid.NewString()}

	for _, shopURL := range shopURLs {
		if ctx.Err() != nil {
			break
		}

		shopName := shopNameFromURL(shopURL)
		if shopName == "" {
			res.ShopsFailed++
			continue
		}

		shopID, ok := s.findShopID(ctx, shopName)
		if !ok {
			s.log.Warnw("shop id not found", "run_id", res.RunID, "shop", shopName)
			res.ShopsFailed++
			continue
		}

		for page := 0; page < asinCatalogMaxPages; page++ {
			if ctx.Err() != nil {
				break
			}
			catalog := s.market.ShopCatalog(ctx, shopID, page, asinCatalogPageSize)
			if len(catalog) == 0 {
				break
			}
			for _, it := range catalog {
				if ctx.Err() != nil {
					break
				}
				m := s.resolver.Resolve(ctx, it.Name)
				if m.ASIN != "" {
					res.Resolved++
				}
				res.Rows = append(res.Rows, ASINRow{
					ShopName:  shopName,
					ShopURL:   shopURL,
					Title:     it.Name,
					ItemURL:   shopee.ItemURL(s.baseURL, shopName, it.ShopID, it.ItemID),
					Sold:      it.HistoricalSold,
					Price:     shopee.CatalogPrice(it.Price),
					ASIN:      m.ASIN,
					AmazonURL: m.URL,
				})
			}
		}
	}

	s.log.Infow("asin extraction done",
		"run_id", res.RunID, "shops", len(shopURLs),
		"rows", len(res.Rows), "resolved", res.Resolved, "failed_shops", res.ShopsFailed)
	return res
}

// findShopID searches the marketplace for the shop name and returns the
// shop id of the first result sold by exactly that shop.
func (s *Service) findShopID(ctx context.Context, shopName string) (int64, bool) {
	for _, r := range s.market.SearchByKeyword(ctx, shopName, 0) {
		if r.ItemBasic != nil && r.ItemBasic.ShopName == shopName {
			return r.ItemBasic.ShopID, true
		}
	}
	return 0, false
}

func shopNameFromURL(shopURL string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(shopURL), "/")
	if trimmed == "" {
		return ""
	}
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
