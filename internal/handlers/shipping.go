package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/naijamarket/storefront/internal/email"
)

type shippingRequest struct {
	FullName   string     `json:"fullName"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	Province   string     `json:"province"`
	PostalCode string     `json:"postalCode"`
	Country    string     `json:"country"`
	CartItems  []cartItem `json:"cartItems"`
}

type cartItem struct {
	Name         string  `json:"name"`
	SelectedSize string  `json:"selectedSize"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Shipping emails the submitted shipping address and cart to the business
// owner.
func (h *Handlers) Shipping(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req shippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid shipping request body", "error", err)
		h.writeJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": "Invalid request body.",
		})
		return
	}

	info := email.ShippingInfo{
		FullName:   req.FullName,
		Address:    req.Address,
		City:       req.City,
		Province:   req.Province,
		PostalCode: req.PostalCode,
		Country:    req.Country,
	}
	items := make([]email.CartItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, email.CartItem{
			Name:         item.Name,
			SelectedSize: item.SelectedSize,
			Quantity:     item.Quantity,
			Price:        item.Price,
		})
	}

	if err := h.shippingNotices.SendShippingNotice(ctx, info, items); err != nil {
		logger.Error("failed to send shipping notice", "error", err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, map[string]string{
			"error": err.Error(),
			"stack": fmt.Sprintf("%+v", err),
		})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Shipping info + products emailed to owner",
	})
}
