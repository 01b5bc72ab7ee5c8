package square

import (
	"context"
	"fmt"
	"net/http"
)

type CreateOrderRequest struct {
	Order          Order  `json:"order"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type createOrderResponse struct {
	Order *Order `json:"order,omitempty"`
}

// CreateOrder creates an order, typically in DRAFT state for use as a
// subscription order template.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var resp createOrderResponse
	if err := c.do(ctx, http.MethodPost, "/v2/orders", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if resp.Order == nil {
		return nil, fmt.Errorf("order missing from response")
	}
	return resp.Order, nil
}
