package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/naijamarket/storefront/internal/cache"
	"github.com/naijamarket/storefront/internal/catalog"
	"github.com/naijamarket/storefront/internal/config"
	"github.com/naijamarket/storefront/internal/email"
	"github.com/naijamarket/storefront/internal/handlers"
	"github.com/naijamarket/storefront/internal/payments"
	"github.com/naijamarket/storefront/internal/services"
	"github.com/naijamarket/storefront/internal/square"
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	CacheProvider cache.Provider
	Handlers      *handlers.Handlers
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)
	for _, warning := range cfg.CredentialWarnings() {
		logger.Warn(warning)
	}

	squareClient := square.NewClient(square.ClientConfig{
		BaseURL:     cfg.SquareBaseURL,
		AccessToken: cfg.AccessToken,
	})

	replayCache, err := cache.NewProvider(cache.Config{
		Provider:              cfg.CacheProvider,
		RedisConnectionString: cfg.RedisConnectionString,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache provider: %w", err)
	}

	emailProvider, err := email.NewProvider(email.Config{
		Provider:     cfg.EmailProvider,
		From:         cfg.EmailUser,
		Host:         cfg.EmailHost,
		Port:         cfg.EmailPort,
		User:         cfg.EmailUser,
		Pass:         cfg.EmailPass,
		ResendAPIKey: cfg.ResendAPIKey,
	})
	if err != nil {
		closeCacheProvider(logger, replayCache)
		return nil, fmt.Errorf("failed to initialize email provider: %w", err)
	}

	normalizerOpts := []catalog.Option{
		catalog.WithLogger(logger.With("component", "normalizer")),
	}
	if cfg.NoImagePlaceholderURL != "" {
		normalizerOpts = append(normalizerOpts, catalog.WithPlaceholderURL(cfg.NoImagePlaceholderURL))
	}
	normalizer := catalog.NewNormalizer(normalizerOpts...)

	productService := services.NewProductService(squareClient, normalizer, logger.With("component", "product_service"))
	chargeAdapter := payments.NewAdapter(squareClient, replayCache, payments.Config{
		LocationID:     cfg.LocationID,
		Currency:       cfg.Currency,
		DiscountCode:   cfg.DiscountCode,
		DiscountAmount: cfg.DiscountAmount,
	}, logger.With("component", "payments"))
	noticeService := services.NewShippingNoticeService(emailProvider, cfg.BusinessEmail, logger.With("component", "shipping_notices"))

	h, err := handlers.New(handlers.Dependencies{
		Config:          cfg,
		Products:        productService,
		Charger:         chargeAdapter,
		ShippingNotices: noticeService,
		Logger:          logger,
	})
	if err != nil {
		closeCacheProvider(logger, replayCache)
		return nil, fmt.Errorf("failed to initialize handlers: %w", err)
	}

	return &App{
		Config:        cfg,
		Logger:        logger,
		CacheProvider: replayCache,
		Handlers:      h,
	}, nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.CacheProvider != nil {
		closeCacheProvider(a.Logger, a.CacheProvider)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level: cfg.LogLevel,
	}))
}

func closeCacheProvider(logger *slog.Logger, provider cache.Provider) {
	if provider == nil {
		return
	}
	if err := provider.Close(); err != nil && logger != nil {
		logger.Warn("failed to close cache provider", "error", err)
	}
}
