// Package catalog turns raw Square catalog listings into a clean product list
// safe for client consumption.
package catalog

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/square"
)

const (
	// DefaultProductName is used when an item carries no name.
	DefaultProductName = "Unnamed Product"
	// DefaultProductDescription is used when an item carries no description.
	DefaultProductDescription = "No description"
	// DescriptionUnavailable replaces the description of an item whose
	// normalization failed unexpectedly.
	DescriptionUnavailable = "Product details unavailable"
)

// Product is the normalized storefront view of a catalog item. Price is in
// major currency units; Image is nil when no image could be resolved and no
// placeholder is configured.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       *string `json:"image"`
}

// ImageResolver fetches the URL of an image that was referenced by an item
// but absent from the listed batch.
type ImageResolver interface {
	ResolveImageURL(ctx context.Context, imageID string) (string, error)
}

// ImageResolverFunc adapts a function to the ImageResolver interface.
type ImageResolverFunc func(ctx context.Context, imageID string) (string, error)

func (f ImageResolverFunc) ResolveImageURL(ctx context.Context, imageID string) (string, error) {
	return f(ctx, imageID)
}

type Normalizer struct {
	placeholderURL string
	logger         *slog.Logger
}

type Option func(*Normalizer)

// WithPlaceholderURL makes unresolvable images fall back to the given URL
// instead of null.
func WithPlaceholderURL(url string) Option {
	return func(n *Normalizer) {
		n.placeholderURL = strings.TrimSpace(url)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		if logger != nil {
			n.logger = logger
		}
	}
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize produces exactly one Product per ITEM object in the input, in the
// input's relative item order. A fault while processing one item degrades
// that item's fields and never affects another item or the caller; Normalize
// does not return an error and does not panic.
//
// Image lookups that miss the batch's IMAGE objects go to the resolver, one
// call per item, dispatched concurrently across items.
func (n *Normalizer) Normalize(ctx context.Context, objects []square.CatalogObject, resolver ImageResolver) []Product {
	images := make(map[string]string)
	var items []square.CatalogObject
	for _, obj := range objects {
		switch obj.Type {
		case square.ObjectTypeImage:
			if obj.ImageData != nil {
				images[obj.ID] = obj.ImageData.URL
			} else {
				images[obj.ID] = ""
			}
		case square.ObjectTypeItem:
			items = append(items, obj)
		}
	}

	products := make([]Product, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item square.CatalogObject) {
			defer wg.Done()
			products[i] = n.normalizeItem(ctx, item, images, resolver)
		}(i, item)
	}
	wg.Wait()

	return products
}

func (n *Normalizer) normalizeItem(ctx context.Context, item square.CatalogObject, images map[string]string, resolver ImageResolver) (product Product) {
	logger := logging.FromContext(ctx, n.logger)

	product.ID = item.ID
	product.Name = DefaultProductName
	product.Description = DefaultProductDescription
	product.Image = n.noImage()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("normalization failed for catalog item", "item_id", item.ID, "panic", r)
			product.Description = DescriptionUnavailable
			product.Price = 0
			product.Image = n.noImage()
		}
	}()

	if item.ItemData == nil {
		return product
	}
	data := item.ItemData

	if name := strings.TrimSpace(data.Name); name != "" {
		product.Name = name
	}
	if desc := strings.TrimSpace(data.Description); desc != "" {
		product.Description = desc
	}

	product.Price = MajorUnits(firstPositivePrice(data.Variations))
	product.Image = n.resolveImage(ctx, logger, data.ImageIDs, images, resolver)

	return product
}

// firstPositivePrice scans variations in order and returns the first present,
// positive minor-unit amount, or 0. Malformed variation data never escapes
// this scan.
func firstPositivePrice(variations []square.CatalogObject) (amount int64) {
	defer func() {
		if recover() != nil {
			amount = 0
		}
	}()

	for _, variation := range variations {
		data := variation.ItemVariationData
		if data == nil || data.PriceMoney == nil {
			continue
		}
		if data.PriceMoney.Amount > 0 {
			return data.PriceMoney.Amount
		}
	}
	return 0
}

func (n *Normalizer) resolveImage(ctx context.Context, logger *slog.Logger, imageIDs []string, images map[string]string, resolver ImageResolver) *string {
	if len(imageIDs) == 0 {
		return n.noImage()
	}
	imageID := imageIDs[0]

	if url, ok := images[imageID]; ok && url != "" {
		return &url
	}
	// A batch entry without a URL is still processing; a fresh retrieve may
	// return the finished URL, so it is treated like a miss.

	if resolver == nil {
		return n.noImage()
	}
	url, err := resolver.ResolveImageURL(ctx, imageID)
	if err != nil {
		logger.Warn("failed to resolve catalog image", "image_id", imageID, "error", err)
		return n.noImage()
	}
	if url == "" {
		return n.noImage()
	}
	return &url
}

func (n *Normalizer) noImage() *string {
	if n.placeholderURL == "" {
		return nil
	}
	url := n.placeholderURL
	return &url
}
