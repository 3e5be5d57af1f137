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

type specialistRunner interface {
	SpecialistResearch(ctx context.Context, p research.SpecialistParams) research.SpecialistResult
}

type SpecialistHandler struct {
	svc    specialistRunner
	logger *zap.SugaredLogger
}

func NewSpecialistHandler(svc *research.Service, logger *zap.SugaredLogger) *SpecialistHandler {
	return &SpecialistHandler{svc: svc, logger: logger}
}

func (h *SpecialistHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/research/specialist", h.Handle)
}

type specialistRequest struct {
	Keywords        []string `json:"keywords" validate:"required,min=1,dive,required"`
	Pages           int      `json:"pages" validate:"gte=0,lte=20"`
	JapanOnly       bool     `json:"japan_only"`
	PreferredOnly   bool     `json:"preferred_only"`
	MinSold         int64    `json:"min_sold" validate:"gte=0"`
	MaxCategories   int      `json:"max_categories" validate:"gte=0,lte=5"`
	RequireSourcing bool     `json:"require_sourcing"`
	MinItems        int      `json:"min_items" validate:"gte=0"`
}

func (h *SpecialistHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req specialistRequest
	if !decodeValid(w, r, &req) {
		return
	}
	if req.Pages == 0 {
		req.Pages = defaultPages
	}
	if req.MaxCategories == 0 {
		// Strictest specialization by default: one category.
		req.MaxCategories = 1
	}

	res := h.svc.SpecialistResearch(r.Context(), research.SpecialistParams{
		Keywords:      req.Keywords,
		Pages:         req.Pages,
		JapanOnly:     req.JapanOnly,
		PreferredOnly: req.PreferredOnly,
		MinSold:       req.MinSold,
		Filters: research.SpecialistFilters{
			MaxCategories:   req.MaxCategories,
			RequireSourcing: req.RequireSourcing,
			MinItemCount:    req.MinItems,
		},
	})

	writeTable(w, r, "shopee_specialist_shops.csv", export.SpecialistTable(res.Candidates), map[string]any{
		"run_id":        res.RunID,
		"checked":       res.Checked,
		"specialists":   len(res.Candidates),
		"keyword_count": len(req.Keywords),
	})
}

var _ router.Handler = (*SpecialistHandler)(nil)
