package main

// One-shot subscription setup: creates a customer, a draft order template,
// and a subscription bound to the first plan variation in the catalog.

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/naijamarket/storefront/internal/config"
	"github.com/naijamarket/storefront/internal/services"
	"github.com/naijamarket/storefront/internal/square"
)

func main() {
	givenName := flag.String("given-name", "", "customer given name")
	familyName := flag.String("family-name", "", "customer family name")
	emailAddress := flag.String("email", "", "customer email address")
	lineItemName := flag.String("item", "Subscription", "order template line item name")
	quantity := flag.String("quantity", "1", "order template line item quantity")
	priceCents := flag.Int64("price-cents", 100, "order template line item price in minor units")
	referenceID := flag.String("reference-id", "", "optional order reference id")
	timeout := flag.Duration("timeout", 60*time.Second, "overall pipeline timeout")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}))

	if *emailAddress == "" {
		logger.Error("-email is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	for _, warning := range cfg.CredentialWarnings() {
		logger.Warn(warning)
	}

	client := square.NewClient(square.ClientConfig{
		BaseURL:     cfg.SquareBaseURL,
		AccessToken: cfg.AccessToken,
	})
	service := services.NewSubscriptionSetupService(client, cfg.LocationID, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result, err := service.Run(ctx, services.SubscriptionSetupInput{
		GivenName:       *givenName,
		FamilyName:      *familyName,
		EmailAddress:    *emailAddress,
		LineItemName:    *lineItemName,
		Quantity:        *quantity,
		PriceMinorUnits: *priceCents,
		ReferenceID:     *referenceID,
	})
	if err != nil {
		logger.Error("subscription setup failed", "error", err)
		os.Exit(1)
	}

	logger.Info("subscription setup complete",
		"customer_id", result.CustomerID,
		"order_id", result.OrderID,
		"plan_variation_id", result.PlanVariationID,
		"subscription_id", result.SubscriptionID,
	)
}
