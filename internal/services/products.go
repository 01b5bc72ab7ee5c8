package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"

	"github.com/naijamarket/storefront/internal/catalog"
	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/observability"
	"github.com/naijamarket/storefront/internal/square"
)

// listedObjectTypes are the catalog object types requested per product
// listing; images arrive in the same batch so most lookups stay local.
const listedObjectTypes = square.ObjectTypeItem + "," + square.ObjectTypeImage

type CatalogClient interface {
	ListCatalog(ctx context.Context, types string) ([]square.CatalogObject, error)
	RetrieveObject(ctx context.Context, objectID string) (*square.CatalogObject, error)
}

// ProductService lists the storefront catalog: it fetches a fresh listing
// from the provider per request and normalizes it for client consumption.
type ProductService struct {
	client     CatalogClient
	normalizer *catalog.Normalizer
	logger     *slog.Logger
}

func NewProductService(client CatalogClient, normalizer *catalog.Normalizer, logger *slog.Logger) *ProductService {
	return &ProductService{
		client:     client,
		normalizer: normalizer,
		logger:     logger,
	}
}

func (s *ProductService) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	logger := s.loggerFromContext(ctx)
	meter := observability.MeterFromContext(ctx)

	objects, err := s.client.ListCatalog(ctx, listedObjectTypes)
	if err != nil {
		meter.Count("catalog.list.failed", 1)
		return nil, fmt.Errorf("failed to load products from Square: %w", err)
	}

	resolver := catalog.ImageResolverFunc(func(ctx context.Context, imageID string) (string, error) {
		object, err := s.client.RetrieveObject(ctx, imageID)
		if err != nil {
			return "", err
		}
		if object.ImageData == nil || object.ImageData.URL == "" {
			return "", fmt.Errorf("catalog object %s has no image url", imageID)
		}
		return object.ImageData.URL, nil
	})

	products := s.normalizer.Normalize(ctx, objects, resolver)
	logger.Info("catalog listed", "objects", len(objects), "products", len(products))
	meter.Count("catalog.list.succeeded", 1, sentry.WithAttributes(
		attribute.Int("product_count", len(products)),
	))
	return products, nil
}
