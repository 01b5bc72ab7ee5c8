package payments

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/naijamarket/storefront/internal/cache"
	"github.com/naijamarket/storefront/internal/square"
)

type fakePaymentCreator struct {
	calls   []square.CreatePaymentRequest
	err     error
	payment *square.Payment
}

func (f *fakePaymentCreator) CreatePayment(_ context.Context, req square.CreatePaymentRequest) (*square.Payment, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return nil, f.err
	}
	if f.payment != nil {
		return f.payment, nil
	}
	return &square.Payment{
		ID:          fmt.Sprintf("pay_%d", len(f.calls)),
		Status:      "COMPLETED",
		AmountMoney: &req.AmountMoney,
	}, nil
}

func newTestAdapter(t *testing.T, creator *fakePaymentCreator) *Adapter {
	t.Helper()

	replay, err := cache.NewMemoryProvider()
	if err != nil {
		t.Fatalf("failed to create memory cache: %v", err)
	}
	return NewAdapter(creator, replay, Config{
		LocationID:     "L1",
		Currency:       "CAD",
		DiscountCode:   "NEWBIE123",
		DiscountAmount: 5,
	}, nil)
}

func TestChargeAppliesFlatDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		amount       float64
		discountCode string
		wantMinor    int64
	}{
		{name: "matching code subtracts flat amount", amount: 20, discountCode: "newbie123", wantMinor: 1500},
		{name: "code is trimmed and case-insensitive", amount: 20, discountCode: "  NeWbIe123 ", wantMinor: 1500},
		{name: "floored at zero", amount: 3, discountCode: "NEWBIE123", wantMinor: 0},
		{name: "non-matching code charges full amount", amount: 20, discountCode: "OTHER", wantMinor: 2000},
		{name: "no code charges full amount", amount: 19.99, wantMinor: 1999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			creator := &fakePaymentCreator{}
			adapter := newTestAdapter(t, creator)

			result := adapter.Charge(context.Background(), ChargeInput{
				SourceID:     "cnon:nonce",
				Amount:       tt.amount,
				DiscountCode: tt.discountCode,
			})

			if len(result.Errors) != 0 {
				t.Fatalf("unexpected errors: %+v", result.Errors)
			}
			if len(creator.calls) != 1 {
				t.Fatalf("expected 1 provider call, got %d", len(creator.calls))
			}
			if got := creator.calls[0].AmountMoney.Amount; got != tt.wantMinor {
				t.Fatalf("charged %d minor units, want %d", got, tt.wantMinor)
			}
			if creator.calls[0].AmountMoney.Currency != "CAD" {
				t.Fatalf("unexpected currency: %q", creator.calls[0].AmountMoney.Currency)
			}
		})
	}
}

func TestChargeGeneratesUniqueIdempotencyKeys(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{}
	adapter := newTestAdapter(t, creator)

	adapter.Charge(context.Background(), ChargeInput{SourceID: "s", Amount: 10})
	adapter.Charge(context.Background(), ChargeInput{SourceID: "s", Amount: 10})

	if len(creator.calls) != 2 {
		t.Fatalf("expected 2 provider calls, got %d", len(creator.calls))
	}
	first, second := creator.calls[0].IdempotencyKey, creator.calls[1].IdempotencyKey
	if first == "" || second == "" {
		t.Fatalf("expected generated idempotency keys, got %q and %q", first, second)
	}
	if first == second {
		t.Fatalf("idempotency keys must be unique per call, both were %q", first)
	}
}

func TestChargeReplaysCallerSuppliedIdempotencyKey(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{}
	adapter := newTestAdapter(t, creator)

	input := ChargeInput{SourceID: "s", Amount: 10, IdempotencyKey: "order-42"}
	first := adapter.Charge(context.Background(), input)
	second := adapter.Charge(context.Background(), input)

	if len(creator.calls) != 1 {
		t.Fatalf("expected a single provider charge for the key, got %d", len(creator.calls))
	}
	if first.Payment == nil || second.Payment == nil {
		t.Fatalf("expected payments in both results: %+v / %+v", first, second)
	}
	if first.Payment.ID != second.Payment.ID {
		t.Fatalf("replayed result differs: %q vs %q", first.Payment.ID, second.Payment.ID)
	}
}

func TestChargeTranslatesProviderErrors(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{
		err: &square.APIError{
			StatusCode: 402,
			Errors: []square.Error{
				{Category: "PAYMENT_METHOD_ERROR", Code: "CARD_DECLINED", Detail: "Card declined."},
			},
		},
	}
	adapter := newTestAdapter(t, creator)

	result := adapter.Charge(context.Background(), ChargeInput{SourceID: "s", Amount: 10})

	if result.Payment != nil {
		t.Fatalf("expected nil payment, got %+v", result.Payment)
	}
	if len(result.Errors) != 1 || result.Errors[0].Code != "CARD_DECLINED" {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
}

func TestChargeSynthesizesErrorForTransportFailure(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{err: fmt.Errorf("connection refused")}
	adapter := newTestAdapter(t, creator)

	result := adapter.Charge(context.Background(), ChargeInput{SourceID: "s", Amount: 10})

	if result.Payment != nil {
		t.Fatalf("expected nil payment, got %+v", result.Payment)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected one synthesized error, got %+v", result.Errors)
	}
	got := result.Errors[0]
	if got.Code != "UNKNOWN_ERROR" || got.Category != "API_ERROR" || !strings.Contains(got.Detail, "connection refused") {
		t.Fatalf("unexpected synthesized error: %+v", got)
	}
}

func TestChargeDoesNotReplayFailures(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{err: fmt.Errorf("timeout")}
	adapter := newTestAdapter(t, creator)

	input := ChargeInput{SourceID: "s", Amount: 10, IdempotencyKey: "order-7"}
	adapter.Charge(context.Background(), input)

	creator.err = nil
	result := adapter.Charge(context.Background(), input)

	if len(creator.calls) != 2 {
		t.Fatalf("expected retry to reach the provider, got %d calls", len(creator.calls))
	}
	if result.Payment == nil {
		t.Fatalf("expected successful retry, got %+v", result)
	}
}

func TestChargeRendersMoneyAsStrings(t *testing.T) {
	t.Parallel()

	creator := &fakePaymentCreator{payment: &square.Payment{
		ID:          "pay_big",
		Status:      "COMPLETED",
		AmountMoney: &square.Money{Amount: 9007199254740993, Currency: "CAD"},
		TotalMoney:  &square.Money{Amount: 9007199254740993, Currency: "CAD"},
	}}
	adapter := newTestAdapter(t, creator)

	result := adapter.Charge(context.Background(), ChargeInput{SourceID: "s", Amount: 10})

	if result.Payment == nil || result.Payment.AmountMoney == nil {
		t.Fatalf("expected payment with amount, got %+v", result)
	}
	if result.Payment.AmountMoney.Amount != "9007199254740993" {
		t.Fatalf("amount not rendered as exact string: %q", result.Payment.AmountMoney.Amount)
	}
	if result.Payment.TotalMoney.Amount != "9007199254740993" {
		t.Fatalf("total not rendered as exact string: %q", result.Payment.TotalMoney.Amount)
	}
}
