package researchapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seller-scout/internal/export"
	"seller-scout/internal/research"
	"seller-scout/internal/router"
)

type keywordRunner interface {
	KeywordResearch(ctx context.Context, p research.KeywordParams) research.KeywordResult
}

type KeywordHandler struct {
	svc    keywordRunner
	logger *zap.SugaredLogger
}

func NewKeywordHandler(svc *research.Service, logger *zap.SugaredLogger) *KeywordHandler {
	return &KeywordHandler{svc: svc, logger: logger}
}

func (h *KeywordHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/research/keyword", h.Handle)
}

type keywordRequest struct {
	Keyword       string `json:"keyword" validate:"required"`
	Pages         int    `json:"pages" validate:"gte=0,lte=20"`
	JapanOnly     bool   `json:"japan_only"`
	PreferredOnly bool   `json:"preferred_only"`
	MinSold       int64  `json:"min_sold" validate:"gte=0"`
	MinItems      int    `json:"min_items" validate:"gte=0"`
}

func (h *KeywordHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req keywordRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.Pages == 0 {
		req.Pages = defaultPages
	}

	res := h.svc.KeywordResearch(r.Context(), research.KeywordParams{
		Keyword:       req.Keyword,
		Pages:         req.Pages,
		JapanOnly:     req.JapanOnly,
		PreferredOnly: req.PreferredOnly,
		MinSold:       req.MinSold,
		MinItemCount:  req.MinItems,
	})

	writeTable(w, r, "shopee_keyword_"+req.Keyword+".csv", export.ShopSummaryTable(res.Shops), map[string]any{
		"run_id":     res.RunID,
		"keyword":    res.Keyword,
		"shop_count": len(res.Shops),
		"item_count": len(res.Items),
	})
}

var _ router.Handler = (*KeywordHandler)(nil)
