// Package payments adapts checkout requests to the provider's payment API.
// Every path out of the adapter is a ChargeResult; provider failures are
// translated into the result's error list and never surface as Go errors.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/naijamarket/storefront/internal/cache"
	"github.com/naijamarket/storefront/internal/catalog"
	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/square"
)

// replayTTL is how long charge results are kept for idempotent replay of
// caller-supplied keys.
const replayTTL = 24 * time.Hour

type PaymentCreator interface {
	CreatePayment(ctx context.Context, req square.CreatePaymentRequest) (*square.Payment, error)
}

type Adapter struct {
	payments       PaymentCreator
	replayCache    cache.Provider
	locationID     string
	currency       string
	discountCode   string
	discountAmount int64
	logger         *slog.Logger
}

type Config struct {
	LocationID string
	Currency   string
	// DiscountCode is compared case-insensitively after trimming; empty
	// disables the discount entirely.
	DiscountCode string
	// DiscountAmount is the flat discount in major currency units.
	DiscountAmount int64
}

func NewAdapter(payments PaymentCreator, replayCache cache.Provider, cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Adapter{
		payments:       payments,
		replayCache:    replayCache,
		locationID:     cfg.LocationID,
		currency:       cfg.Currency,
		discountCode:   cfg.DiscountCode,
		discountAmount: cfg.DiscountAmount,
		logger:         logger,
	}
}

type ChargeInput struct {
	SourceID string
	// Amount is in major currency units.
	Amount       float64
	DiscountCode string
	// IdempotencyKey is optional. When supplied, retries with the same key
	// replay the first result instead of re-submitting to the provider.
	IdempotencyKey string
}

// ChargeResult is the adapter's only output shape. Exactly one of Payment and
// a non-empty Errors list is populated.
type ChargeResult struct {
	Payment *PaymentDetails `json:"payment"`
	Errors  []square.Error  `json:"errors"`
}

// PaymentDetails mirrors the provider's payment with all integer monetary
// amounts rendered as decimal strings, so consumers that read JSON numbers as
// floats cannot corrupt them.
type PaymentDetails struct {
	ID            string        `json:"id"`
	Status        string        `json:"status,omitempty"`
	SourceType    string        `json:"sourceType,omitempty"`
	AmountMoney   *MoneyDetails `json:"amountMoney,omitempty"`
	TotalMoney    *MoneyDetails `json:"totalMoney,omitempty"`
	ApprovedMoney *MoneyDetails `json:"approvedMoney,omitempty"`
	LocationID    string        `json:"locationId,omitempty"`
	OrderID       string        `json:"orderId,omitempty"`
	ReceiptURL    string        `json:"receiptUrl,omitempty"`
	CreatedAt     string        `json:"createdAt,omitempty"`
}

type MoneyDetails struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency,omitempty"`
}

// Charge applies the discount rule, converts the amount to minor units, and
// submits a payment under an idempotency key. It never returns an error:
// failures come back inside the result's error list.
func (a *Adapter) Charge(ctx context.Context, input ChargeInput) ChargeResult {
	logger := logging.FromContext(ctx, a.logger)

	key := strings.TrimSpace(input.IdempotencyKey)
	callerKeyed := key != ""
	if !callerKeyed {
		key = newIdempotencyKey()
	}

	if callerKeyed {
		if cached, ok := a.replayResult(ctx, key); ok {
			logger.Info("replaying charge result for idempotency key", "idempotency_key", key)
			return cached
		}
	}

	finalAmount := a.applyDiscount(input.Amount, input.DiscountCode)
	minorAmount, err := catalog.MinorUnits(finalAmount)
	if err != nil {
		return errorResult("INVALID_REQUEST_ERROR", "INVALID_VALUE", fmt.Sprintf("invalid charge amount: %v", err))
	}

	payment, err := a.payments.CreatePayment(ctx, square.CreatePaymentRequest{
		SourceID:       input.SourceID,
		IdempotencyKey: key,
		AmountMoney:    square.Money{Amount: minorAmount, Currency: a.currency},
		LocationID:     a.locationID,
	})
	if err != nil {
		logger.Error("payment creation failed", "error", err, "amount", finalAmount)
		return resultFromError(err)
	}

	result := ChargeResult{
		Payment: paymentDetails(payment),
		Errors:  []square.Error{},
	}
	if callerKeyed {
		a.storeResult(ctx, key, result)
	}
	return result
}

func (a *Adapter) applyDiscount(amount float64, code string) float64 {
	if a.discountCode == "" {
		return amount
	}
	if !strings.EqualFold(strings.TrimSpace(code), a.discountCode) {
		return amount
	}

	discounted := amount - float64(a.discountAmount)
	if discounted < 0 {
		return 0
	}
	return discounted
}

func (a *Adapter) replayResult(ctx context.Context, key string) (ChargeResult, bool) {
	if a.replayCache == nil {
		return ChargeResult{}, false
	}
	cached, err := a.replayCache.Get(ctx, cache.ChargeKey(key))
	if err != nil {
		return ChargeResult{}, false
	}
	var result ChargeResult
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return ChargeResult{}, false
	}
	return result, true
}

func (a *Adapter) storeResult(ctx context.Context, key string, result ChargeResult) {
	if a.replayCache == nil {
		return
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := a.replayCache.Set(ctx, cache.ChargeKey(key), string(encoded), replayTTL); err != nil {
		a.logger.Warn("failed to cache charge result", "error", err)
	}
}

func paymentDetails(payment *square.Payment) *PaymentDetails {
	if payment == nil {
		return nil
	}
	return &PaymentDetails{
		ID:            payment.ID,
		Status:        payment.Status,
		SourceType:    payment.SourceType,
		AmountMoney:   moneyDetails(payment.AmountMoney),
		TotalMoney:    moneyDetails(payment.TotalMoney),
		ApprovedMoney: moneyDetails(payment.ApprovedMoney),
		LocationID:    payment.LocationID,
		OrderID:       payment.OrderID,
		ReceiptURL:    payment.ReceiptURL,
		CreatedAt:     payment.CreatedAt,
	}
}

func moneyDetails(money *square.Money) *MoneyDetails {
	if money == nil {
		return nil
	}
	return &MoneyDetails{
		Amount:   catalog.FormatMinorUnits(money.Amount),
		Currency: money.Currency,
	}
}

func resultFromError(err error) ChargeResult {
	var apiErr *square.APIError
	if errors.As(err, &apiErr) && len(apiErr.Errors) > 0 {
		return ChargeResult{Payment: nil, Errors: apiErr.Errors}
	}
	return errorResult("API_ERROR", "UNKNOWN_ERROR", err.Error())
}

func errorResult(category, code, detail string) ChargeResult {
	return ChargeResult{
		Payment: nil,
		Errors:  []square.Error{{Category: category, Code: code, Detail: detail}},
	}
}

func newIdempotencyKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
