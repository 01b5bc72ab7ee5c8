package square

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type listCatalogResponse struct {
	Cursor  string          `json:"cursor,omitempty"`
	Objects []CatalogObject `json:"objects,omitempty"`
}

// ListCatalog fetches all catalog objects of the given comma-separated types,
// following pagination cursors until the listing is exhausted.
func (c *Client) ListCatalog(ctx context.Context, types string) ([]CatalogObject, error) {
	var objects []CatalogObject
	cursor := ""

	for {
		query := url.Values{}
		if types != "" {
			query.Set("types", types)
		}
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var resp listCatalogResponse
		if err := c.do(ctx, http.MethodGet, "/v2/catalog/list", query, nil, &resp); err != nil {
			return nil, fmt.Errorf("failed to list catalog: %w", err)
		}

		objects = append(objects, resp.Objects...)
		if resp.Cursor == "" {
			return objects, nil
		}
		cursor = resp.Cursor
	}
}

type retrieveObjectResponse struct {
	Object *CatalogObject `json:"object,omitempty"`
}

// RetrieveObject fetches a single catalog object by id.
func (c *Client) RetrieveObject(ctx context.Context, objectID string) (*CatalogObject, error) {
	if objectID == "" {
		return nil, fmt.Errorf("catalog object id is required")
	}

	var resp retrieveObjectResponse
	path := "/v2/catalog/object/" + url.PathEscape(objectID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to retrieve catalog object %s: %w", objectID, err)
	}
	if resp.Object == nil {
		return nil, fmt.Errorf("catalog object %s not found in response", objectID)
	}
	return resp.Object, nil
}
