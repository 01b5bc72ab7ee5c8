package square

import (
	"context"
	"fmt"
	"net/http"
)

type CreateSubscriptionRequest struct {
	IdempotencyKey  string              `json:"idempotency_key,omitempty"`
	LocationID      string              `json:"location_id"`
	CustomerID      string              `json:"customer_id"`
	PlanVariationID string              `json:"plan_variation_id"`
	Phases          []SubscriptionPhase `json:"phases,omitempty"`
}

type createSubscriptionResponse struct {
	Subscription *Subscription `json:"subscription,omitempty"`
}

func (c *Client) CreateSubscription(ctx context.Context, req CreateSubscriptionRequest) (*Subscription, error) {
	var resp createSubscriptionResponse
	if err := c.do(ctx, http.MethodPost, "/v2/subscriptions", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	if resp.Subscription == nil {
		return nil, fmt.Errorf("subscription missing from response")
	}
	return resp.Subscription, nil
}
