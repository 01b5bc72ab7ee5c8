package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/naijamarket/storefront/internal/email"
	"github.com/naijamarket/storefront/internal/logging"
	"github.com/naijamarket/storefront/internal/observability"
)

// ShippingNoticeService emails shipping submissions to the business owner.
// Send failures are reported to the caller; nothing is retried automatically.
type ShippingNoticeService struct {
	provider  email.Provider
	recipient string
	logger    *slog.Logger
}

func NewShippingNoticeService(provider email.Provider, recipient string, logger *slog.Logger) *ShippingNoticeService {
	return &ShippingNoticeService{
		provider:  provider,
		recipient: recipient,
		logger:    logger,
	}
}

func (s *ShippingNoticeService) SendShippingNotice(ctx context.Context, info email.ShippingInfo, items []email.CartItem) error {
	logger := logging.FromContext(ctx, s.logger)
	meter := observability.MeterFromContext(ctx)

	if s.recipient == "" {
		return fmt.Errorf("business notification recipient is not configured")
	}

	mail, err := email.BuildShippingNotice(s.recipient, info, items)
	if err != nil {
		return err
	}

	if err := s.provider.SendEmail(ctx, mail); err != nil {
		meter.Count("shipping.notice.failed", 1)
		return fmt.Errorf("failed to email shipping notice: %w", err)
	}

	logger.Info("shipping notice emailed", "recipient", s.recipient, "items", len(items))
	meter.Count("shipping.notice.sent", 1)
	return nil
}
