package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/naijamarket/storefront/internal/payments"
	"github.com/naijamarket/storefront/internal/square"
)

var postalCodeRegex = regexp.MustCompile(`^[A-Za-z0-9\s\-]{3,10}$`)

type chargeRequest struct {
	SourceID       string  `json:"sourceId"`
	Amount         float64 `json:"amount"`
	PostalCode     string  `json:"postalCode"`
	DiscountCode   string  `json:"discountCode"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// Charge submits a payment. Provider failures come back as HTTP 200 with a
// populated error list so callers can tell a declined payment from a
// transport failure; only malformed input earns a 4xx.
func (h *Handlers) Charge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	var req chargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid charge request body", "error", err)
		h.writeJSON(ctx, w, http.StatusBadRequest, payments.ChargeResult{
			Errors: []square.Error{{Detail: "Invalid request body."}},
		})
		return
	}

	if req.PostalCode != "" && !postalCodeRegex.MatchString(req.PostalCode) {
		h.writeJSON(ctx, w, http.StatusBadRequest, payments.ChargeResult{
			Errors: []square.Error{{Detail: "Invalid postal code format."}},
		})
		return
	}

	logger.Info("incoming payment", "amount", req.Amount, "discount_code", req.DiscountCode)

	result := h.charger.Charge(ctx, payments.ChargeInput{
		SourceID:       req.SourceID,
		Amount:         req.Amount,
		DiscountCode:   req.DiscountCode,
		IdempotencyKey: req.IdempotencyKey,
	})

	h.writeJSON(ctx, w, http.StatusOK, result)
}
