package square

import (
	"context"
	"fmt"
	"net/http"
)

type CreateCustomerRequest struct {
	GivenName    string `json:"given_name,omitempty"`
	FamilyName   string `json:"family_name,omitempty"`
	EmailAddress string `json:"email_address,omitempty"`
}

type createCustomerResponse struct {
	Customer *Customer `json:"customer,omitempty"`
}

func (c *Client) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	var resp createCustomerResponse
	if err := c.do(ctx, http.MethodPost, "/v2/customers", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if resp.Customer == nil {
		return nil, fmt.Errorf("customer missing from response")
	}
	return resp.Customer, nil
}
