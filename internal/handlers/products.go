package handlers

import (
	"net/http"
)

// Products lists the normalized storefront catalog.
func (h *Handlers) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		logger.Error("failed to fetch products from Square", "error", err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{
			"error": "Failed to load products from Square",
		})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, products)
}
