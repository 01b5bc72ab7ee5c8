package square

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestListCatalogFollowsCursor(t *testing.T) {
	t.Parallel()

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++

		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if got := r.URL.Path; got != "/v2/catalog/list" {
			t.Errorf("unexpected path: %q", got)
		}
		if got := r.URL.Query().Get("types"); got != "ITEM,IMAGE" {
			t.Errorf("unexpected types query: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("cursor") == "" {
			if err := json.NewEncoder(w).Encode(listCatalogResponse{
				Cursor:  "page-2",
				Objects: []CatalogObject{{Type: ObjectTypeItem, ID: "ITEM_1"}},
			}); err != nil {
				t.Errorf("failed to encode response: %v", err)
			}
			return
		}
		if err := json.NewEncoder(w).Encode(listCatalogResponse{
			Objects: []CatalogObject{{Type: ObjectTypeImage, ID: "IMG_1"}},
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		AccessToken: "test-token",
		HTTPClient:  server.Client(),
	})

	objects, err := client.ListCatalog(context.Background(), "ITEM,IMAGE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if requests != 2 {
		t.Fatalf("expected 2 requests, got %d", requests)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objects))
	}
	if objects[0].ID != "ITEM_1" || objects[1].ID != "IMG_1" {
		t.Fatalf("unexpected objects: %+v", objects)
	}
}

func TestRetrieveObjectNotFound(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte(`{"errors":[{"category":"INVALID_REQUEST_ERROR","code":"NOT_FOUND","detail":"object not found"}]}`)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		AccessToken: "test-token",
		HTTPClient:  server.Client(),
	})

	_, err := client.RetrieveObject(context.Background(), "MISSING")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound {
		t.Fatalf("unexpected status: got=%d want=%d", apiErr.StatusCode, http.StatusNotFound)
	}
	if len(apiErr.Errors) != 1 || apiErr.Errors[0].Code != "NOT_FOUND" {
		t.Fatalf("unexpected errors: %+v", apiErr.Errors)
	}
}

func TestCreatePaymentSendsIdempotencyKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v2/payments" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var req CreatePaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}
		if req.IdempotencyKey != "key-1" {
			t.Errorf("unexpected idempotency key: %q", req.IdempotencyKey)
		}
		if req.AmountMoney.Amount != 1500 || req.AmountMoney.Currency != "CAD" {
			t.Errorf("unexpected amount money: %+v", req.AmountMoney)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(createPaymentResponse{
			Payment: &Payment{ID: "pay_1", Status: "COMPLETED", AmountMoney: &req.AmountMoney},
		}); err != nil {
			t.Errorf("failed to encode response: %v", err)
		}
	}))
	defer server.Close()

	client := NewClient(ClientConfig{
		BaseURL:     server.URL,
		AccessToken: "test-token",
		HTTPClient:  server.Client(),
	})

	payment, err := client.CreatePayment(context.Background(), CreatePaymentRequest{
		SourceID:       "cnon:card-nonce",
		IdempotencyKey: "key-1",
		AmountMoney:    Money{Amount: 1500, Currency: "CAD"},
		LocationID:     "L1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payment.ID != "pay_1" || payment.Status != "COMPLETED" {
		t.Fatalf("unexpected payment: %+v", payment)
	}
}

func TestNewAPIErrorSynthesizesEntryForUnparseableBody(t *testing.T) {
	t.Parallel()

	apiErr := newAPIError(http.StatusBadGateway, []byte("upstream unavailable"))
	if len(apiErr.Errors) != 1 {
		t.Fatalf("expected 1 synthesized error, got %d", len(apiErr.Errors))
	}
	if apiErr.Errors[0].Code != "UNKNOWN_ERROR" || apiErr.Errors[0].Detail != "upstream unavailable" {
		t.Fatalf("unexpected synthesized error: %+v", apiErr.Errors[0])
	}
}
