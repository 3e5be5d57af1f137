package researchapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"seller-scout/internal/pkg/render"
	"seller-scout/internal/router"
	"seller-scout/internal/shopee"
)

// CategoriesHandler serves the fixed category table the category
// research form is built from.
type CategoriesHandler struct{}

func NewCategoriesHandler() *CategoriesHandler { return &CategoriesHandler{} }

func (h *CategoriesHandler) RegisterRoute(r *chi.Mux) {
	r.Get("/v1/categories", h.Handle)
}

func (h *CategoriesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, http.StatusOK, map[string]any{"categories": shopee.Categories()})
}

var _ router.Handler = (*CategoriesHandler)(nil)
