package researchapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seller-scout/internal/export"
	"seller-scout/internal/research"
	"seller-scout/internal/router"
)

type categoryRunner interface {
	CategoryResearch(ctx context.Context, p research.CategoryParams) research.CategoryResult
}

type CategoryHandler struct {
	svc    categoryRunner
	logger *zap.SugaredLogger
}

func NewCategoryHandler(svc *research.Service, logger *zap.SugaredLogger) *CategoryHandler {
	return &CategoryHandler{svc: svc, logger: logger}
}

func (h *CategoryHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/research/category", h.Handle)
}

type categoryRequest struct {
	CategoryID  int64 `json:"category_id" validate:"required,gt=0"`
	Pages       int   `json:"pages" validate:"gte=0,lte=20"`
	JapanOnly   bool  `json:"japan_only"`
	MinSold     int64 `json:"min_sold" validate:"gte=0"`
	ExtractASIN bool  `json:"extract_asin"`
}

func (h *CategoryHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.Pages == 0 {
		req.Pages = defaultPages
	}

	res := h.svc.CategoryResearch(r.Context(), research.CategoryParams{
		CategoryID:  req.CategoryID,
		Pages:       req.Pages,
		JapanOnly:   req.JapanOnly,
		MinSold:     req.MinSold,
		ExtractASIN: req.ExtractASIN,
	})

	filename := "shopee_category_" + strconv.FormatInt(req.CategoryID, 10) + ".csv"
	writeTable(w, r, filename, export.CategoryTable(res.Rows, req.ExtractASIN), map[string]any{
		"run_id":     res.RunID,
		"item_count": len(res.Rows),
		"resolved":   res.Resolved,
	})
}

var _ router.Handler = (*CategoryHandler)(nil)
