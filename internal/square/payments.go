package square

import (
	"context"
	"fmt"
	"net/http"
)

type CreatePaymentRequest struct {
	SourceID       string `json:"source_id"`
	IdempotencyKey string `json:"idempotency_key"`
	AmountMoney    Money  `json:"amount_money"`
	LocationID     string `json:"location_id,omitempty"`
}

type createPaymentResponse struct {
	Payment *Payment `json:"payment,omitempty"`
	Errors  []Error  `json:"errors,omitempty"`
}

// CreatePayment submits a payment. The provider deduplicates on the
// idempotency key, so retrying with the same key will not double-charge.
func (c *Client) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*Payment, error) {
	var resp createPaymentResponse
	if err := c.do(ctx, http.MethodPost, "/v2/payments", nil, req, &resp); err != nil {
		return nil, err
	}
	if len(resp.Errors) > 0 {
		return nil, &APIError{StatusCode: http.StatusOK, Errors: resp.Errors}
	}
	if resp.Payment == nil {
		return nil, fmt.Errorf("payment missing from response")
	}
	return resp.Payment, nil
}
