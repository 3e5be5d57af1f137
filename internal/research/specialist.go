package research

import (
	"context"
	"math"
	"regexp"
	"strings"

	"seller-scout/internal/shopee"
)

// catalogSampleSize bounds the classifier's catalog sample to one page.
// Single-page sampling is intentional: it bounds cost per shop at the
// expense of completeness.
const catalogSampleSize = 50

// Amazon-sourcing heuristic: a listing title carrying an ASIN-shaped
// product code or an Amazon brand token suggests the item was sourced
// from Amazon. Text-only evidence, unverified against ground truth.
var (
	amazonCodePattern = regexp.MustCompile(`B0[A-Z0-9]{8}`)
	amazonBrandTokens = []string{"Amazon", "アマゾン"}
)

// SourcingScore counts titles showing the Amazon-sourcing signal.
func SourcingScore(titles []string) int {
	score := 0
	for _, title := range titles {
		if hasSourcingSignal(title) {
			score++
		}
	}
	return score
}

func hasSourcingSignal(title string) bool {
	if amazonCodePattern.MatchString(title) {
		return true
	}
	for _, token := range amazonBrandTokens {
		if strings.Contains(title, token) {
			return true
		}
	}
	return false
}

// SpecialistFilters are the classifier gates.
type SpecialistFilters struct {
	// MaxCategories is the category-diversity ceiling; shops whose
	// sample spans more distinct primary categories are discarded.
	MaxCategories int
	// RequireSourcing discards shops with a zero sourcing score.
	RequireSourcing bool
	// MinItemCount gates on the shop's reported catalog size (0 = off).
	MinItemCount int
}

// classifyShop evaluates one discovered shop against the specialist
// gates. ok is false when the shop is discarded at any gate, including
// an empty catalog sample (no data to classify on).
func (s *Service) classifyShop(ctx context.Context, keyword string, shop shopee.Item, f SpecialistFilters) (SpecialistCandidate, bool) {
	sample := s.market.ShopCatalog(ctx, shop.ShopID, 0, catalogSampleSize)
	if len(sample) == 0 {
		return SpecialistCandidate{}, false
	}

	categories := make(map[int64]struct{})
	titles := make([]string, 0, len(sample))
	for _, it := range sample {
		categories[it.PrimaryCategory()] = struct{}{}
		titles = append(titles, it.Name)
	}

	if len(categories) > f.MaxCategories {
		return SpecialistCandidate{}, false
	}
	if f.RequireSourcing && SourcingScore(titles) == 0 {
		return SpecialistCandidate{}, false
	}

	var profile shopee.ShopProfile
	if p, ok := s.market.ShopProfile(ctx, shop.ShopID); ok {
		profile = p
	}

	itemCount := profile.ItemCount
	if itemCount == 0 {
		// Profile missing or silent on catalog size: fall back to the
		// sample size.
		itemCount = len(sample)
	}
	if f.MinItemCount > 0 && itemCount < f.MinItemCount {
		return SpecialistCandidate{}, false
	}

	return SpecialistCandidate{
		Keyword:       keyword,
		ShopID:        shop.ShopID,
		ShopName:      shop.ShopName,
		ShopURL:       shop.ShopURL,
		Preferred:     shop.Preferred,
		CategoryCount: len(categories),
		ItemCount:     itemCount,
		FollowerCount: profile.FollowerCount,
		ReviewCount:   profile.RatingCount,
		Rating:        math.Round(profile.RatingStar*10) / 10,
	}, true
}
