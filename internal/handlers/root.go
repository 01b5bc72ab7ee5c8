package handlers

import (
	"net/http"

	"github.com/naijamarket/storefront/static"
)

// Root serves the embedded card payment test page.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	page, err := static.FS.ReadFile("card.html")
	if err != nil {
		h.loggerFromContext(r.Context()).Error("failed to read card page", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(page); err != nil {
		h.loggerFromContext(r.Context()).Error("failed to write card page", "error", err)
	}
}
