package researchapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"seller-scout/internal/export"
	"seller-scout/internal/pkg/render"
	"seller-scout/internal/research"
	"seller-scout/internal/router"
)

type asinRunner interface {
	ResolveShopASINs(ctx context.Context, shopURLs []string) research.ASINResult
}

type ASINHandler struct {
	svc    asinRunner
	logger *zap.SugaredLogger
}

func NewASINHandler(svc *research.Service, logger *zap.SugaredLogger) *ASINHandler {
	return &ASINHandler{svc: svc, logger: logger}
}

func (h *ASINHandler) RegisterRoute(r *chi.Mux) {
	r.Post("/v1/research/asins", h.Handle)
}

// asinRequest accepts either a plain shop URL list or a result table
// from the specialist endpoint; with a table, the shop-URL column is
// located by a case-insensitive "url" substring match on column names.
type asinRequest struct {
	ShopURLs []string      `json:"shop_urls"`
	Table    *export.Table `json:"table"`
}

func (h *ASINHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req asinRequest
	if !decodeValid(w, r, &req) {
		return
	}

	urls := req.ShopURLs
	if len(urls) == 0 && req.Table != nil {
		var ok bool
		urls, ok = shopURLColumn(*req.Table)
		if !ok {
			render.Err(w, http.StatusBadRequest, `no column containing "url" found in table`)
			return
		}
	}
	if len(urls) == 0 {
		render.Err(w, http.StatusBadRequest, "missing shop_urls or table")
		return
	}

	res := h.svc.ResolveShopASINs(r.Context(), urls)

	writeTable(w, r, "shopee_asins.csv", export.ASINTable(res.Rows), map[string]any{
		"run_id":       res.RunID,
		"row_count":    len(res.Rows),
		"resolved":     res.Resolved,
		"failed_shops": res.ShopsFailed,
	})
}

// shopURLColumn extracts the non-empty values of the first column whose
// name contains "url", case-insensitively.
func shopURLColumn(t export.Table) ([]string, bool) {
	col := -1
	for i, name := range t.Columns {
		if strings.Contains(strings.ToLower(name), "url") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, false
	}

	var urls []string
	for _, row := range t.Rows {
		if col >= len(row) {
			continue
		}
		if u := strings.TrimSpace(row[col]); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, true
}

var _ router.Handler = (*ASINHandler)(nil)
