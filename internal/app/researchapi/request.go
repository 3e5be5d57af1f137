// Package researchapi exposes the research pipelines over HTTP. Every
// handler accepts a JSON body, validates it, runs the pipeline under the
// request context (client disconnect cancels the run) and returns the
// result table as JSON or, with ?format=csv, as a CSV download.
package researchapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"seller-scout/internal/export"
	"seller-scout/internal/pkg/render"
)

const defaultPages = 3

var validate = validator.New()

// decodeValid decodes the request body into req and validates it.
// Returns false after writing the 400 response.
func decodeValid(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		render.Err(w, http.StatusBadRequest, "invalid json")
		return false
	}
	if err := validate.Struct(req); err != nil {
		render.Err(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

func writeTable(w http.ResponseWriter, r *http.Request, filename string, table export.Table, meta map[string]any) {
	if wantsCSV(r) {
		data, err := export.CSV(table)
		if err != nil {
			render.Err(w, http.StatusInternalServerError, "csv encoding failed")
			return
		}
		render.CSV(w, filename, data)
		return
	}

	resp := map[string]any{"table": table}
	for k, v := range meta {
		resp[k] = v
	}
	render.JSON(w, http.StatusOK, resp)
}
