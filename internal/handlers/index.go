package handlers

import "net/http"

// NewIndexHandler returns an HTTP handler serving the embedded landing page.
// @Summary Landing page
// @Description Serves the static HTML page of the ledger UI.
// @Tags static
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func NewIndexHandler(page []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(page)
	}
}
