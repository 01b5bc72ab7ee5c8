package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/square"
)

type SubscriptionClient interface {
	RetrieveLocation(ctx context.Context, locationID string) (*square.Location, error)
	CreateCustomer(ctx context.Context, req square.CreateCustomerRequest) (*square.Customer, error)
	CreateOrder(ctx context.Context, req square.CreateOrderRequest) (*square.Order, error)
	ListCatalog(ctx context.Context, types string) ([]square.CatalogObject, error)
	CreateSubscription(ctx context.Context, req square.CreateSubscriptionRequest) (*square.Subscription, error)
}

// SubscriptionSetupService binds a new customer, a draft order template, and
// the first subscription plan variation from the catalog into a subscription.
// The pipeline aborts on the first failed step; there is no cleanup of steps
// that already succeeded.
type SubscriptionSetupService struct {
	client     SubscriptionClient
	locationID string
	logger     *slog.Logger
}

func NewSubscriptionSetupService(client SubscriptionClient, locationID string, logger *slog.Logger) *SubscriptionSetupService {
	return &SubscriptionSetupService{
		client:     client,
		locationID: locationID,
		logger:     logger,
	}
}

type SubscriptionSetupInput struct {
	GivenName    string
	FamilyName   string
	EmailAddress string

	// Draft order template line item.
	LineItemName string
	Quantity     string
	// PriceMinorUnits is the line item price in minor currency units.
	PriceMinorUnits int64
	ReferenceID     string
}

type SubscriptionSetupResult struct {
	CustomerID      string
	OrderID         string
	PlanVariationID string
	SubscriptionID  string
}

func (s *SubscriptionSetupService) Run(ctx context.Context, input SubscriptionSetupInput) (*SubscriptionSetupResult, error) {
	logger := logging.FromContext(ctx, s.logger)

	location, err := s.client.RetrieveLocation(ctx, s.locationID)
	if err != nil {
		return nil, fmt.Errorf("could not determine location currency: %w", err)
	}
	if location.Currency == "" {
		return nil, fmt.Errorf("location %s has no currency", s.locationID)
	}
	logger.Info("resolved location currency", "location_id", s.locationID, "currency", location.Currency)

	customer, err := s.client.CreateCustomer(ctx, square.CreateCustomerRequest{
		GivenName:    input.GivenName,
		FamilyName:   input.FamilyName,
		EmailAddress: input.EmailAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	logger.Info("customer created", "customer_id", customer.ID)

	order, err := s.client.CreateOrder(ctx, square.CreateOrderRequest{
		IdempotencyKey: uuid.NewString(),
		Order: square.Order{
			LocationID:  s.locationID,
			ReferenceID: input.ReferenceID,
			State:       "DRAFT",
			LineItems: []square.OrderLineItem{
				{
					Quantity: input.Quantity,
					Name:     input.LineItemName,
					BasePriceMoney: &square.Money{
						Amount:   input.PriceMinorUnits,
						Currency: location.Currency,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create order template: %w", err)
	}
	logger.Info("draft order created", "order_id", order.ID)

	planVariationID, err := s.firstPlanVariationID(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("subscription plan variation selected", "plan_variation_id", planVariationID)

	subscription, err := s.client.CreateSubscription(ctx, square.CreateSubscriptionRequest{
		IdempotencyKey:  uuid.NewString(),
		LocationID:      s.locationID,
		CustomerID:      customer.ID,
		PlanVariationID: planVariationID,
		Phases: []square.SubscriptionPhase{
			{Ordinal: 0, OrderTemplateID: order.ID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}
	logger.Info("subscription created", "subscription_id", subscription.ID)

	return &SubscriptionSetupResult{
		CustomerID:      customer.ID,
		OrderID:         order.ID,
		PlanVariationID: planVariationID,
		SubscriptionID:  subscription.ID,
	}, nil
}

// firstPlanVariationID returns the first subscription plan variation listed in
// the catalog. With multiple plans there is no disambiguation; the first match
// wins.
func (s *SubscriptionSetupService) firstPlanVariationID(ctx context.Context) (string, error) {
	objects, err := s.client.ListCatalog(ctx, square.ObjectTypeSubscriptionPlanVariation)
	if err != nil {
		return "", fmt.Errorf("failed to list subscription plan variations: %w", err)
	}
	if len(objects) == 0 {
		return "", fmt.Errorf("no subscription plan variations found in catalog")
	}
	return objects[0].ID, nil
}
