package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/naijamarket/storefront/internal/catalog"
	"github.com/naijamarket/storefront/internal/config"
	"github.com/naijamarket/storefront/internal/email"
	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/payments"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

type ProductLister interface {
	ListProducts(ctx context.Context) ([]catalog.Product, error)
}

type Charger interface {
	Charge(ctx context.Context, input payments.ChargeInput) payments.ChargeResult
}

type ShippingNotifier interface {
	SendShippingNotice(ctx context.Context, info email.ShippingInfo, items []email.CartItem) error
}

// Handlers provides HTTP request handlers for the storefront API.
type Handlers struct {
	config          *config.Config
	products        ProductLister
	charger         Charger
	shippingNotices ShippingNotifier
	logger          *slog.Logger
}

type Dependencies struct {
	Config          *config.Config
	Products        ProductLister
	Charger         Charger
	ShippingNotices ShippingNotifier
	Logger          *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.Products == nil {
		return nil, fmt.Errorf("handlers dependencies: products is required")
	}
	if deps.Charger == nil {
		return nil, fmt.Errorf("handlers dependencies: charger is required")
	}
	if deps.ShippingNotices == nil {
		return nil, fmt.Errorf("handlers dependencies: shippingNotices is required")
	}

	return &Handlers{
		config:          deps.Config,
		products:        deps.Products,
		charger:         deps.Charger,
		shippingNotices: deps.ShippingNotices,
		logger:          logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (h *Handlers) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.loggerFromContext(ctx).Error("failed to encode response", "error", err)
	}
}
