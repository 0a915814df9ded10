package fakebackend

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jrsteele09/hostel-admin/apiclient"
)

const (
	headerXSRFToken    = apiclient.HeaderXSRFToken
	cookieXSRFToken    = apiclient.CookieXSRFToken
	statusCSRFMismatch = apiclient.StatusCSRFMismatch
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"success": false, "message": message})
}

// writeValidation answers 422 with per-field messages.
func writeValidation(w http.ResponseWriter, fields map[string]string) {
	errs := make(map[string][]string, len(fields))
	for field, msg := range fields {
		errs[field] = []string{msg}
	}
	writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
		"success": false,
		"message": "The given data was invalid.",
		"errors":  errs,
	})
}

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// paging reads page and the per-page key, with defaults.
func paging(r *http.Request, perPageKey string, defaultPerPage int) (int, int) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	perPage, _ := strconv.Atoi(r.URL.Query().Get(perPageKey))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	return page, perPage
}

// paginate slices items and builds the canonical pagination block.
func paginate[T any](items []T, page, perPage int) ([]T, apiclient.Pagination) {
	total := len(items)
	p := apiclient.Pagination{
		CurrentPage: page,
		PerPage:     perPage,
		Total:       total,
		LastPage:    (total + perPage - 1) / perPage,
	}
	if p.LastPage == 0 {
		p.LastPage = 1
	}
	start := (page - 1) * perPage
	if start >= total {
		return []T{}, p
	}
	end := min(start+perPage, total)
	p.From, p.To = start+1, end
	return items[start:end], p
}
