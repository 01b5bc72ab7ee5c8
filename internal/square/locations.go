package square

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type retrieveLocationResponse struct {
	Location *Location `json:"location,omitempty"`
}

func (c *Client) RetrieveLocation(ctx context.Context, locationID string) (*Location, error) {
	if locationID == "" {
		return nil, fmt.Errorf("location id is required")
	}

	var resp retrieveLocationResponse
	path := "/v2/locations/" + url.PathEscape(locationID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to retrieve location %s: %w", locationID, err)
	}
	if resp.Location == nil {
		return nil, fmt.Errorf("location %s not found in response", locationID)
	}
	return resp.Location, nil
}
