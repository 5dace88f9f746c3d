package nats

import (
	"context"
	"log/slog"

	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/pkg/logger"
)

// NoopPublisher ใช้เมื่อไม่ได้ตั้ง NATS_URL
type NoopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher() *NoopPublisher {
	return &NoopPublisher{
		logger: logger.With("component", "noop_publisher"),
	}
}

func (p *NoopPublisher) MenuRegistered(ctx context.Context, menu *models.Menu) error {
	p.logger.DebugContext(ctx, "Menu registered (noop)", "menu_id", menu.ID)
	return nil
}

func (p *NoopPublisher) MenuDeleted(ctx context.Context, menuID uint) error {
	p.logger.DebugContext(ctx, "Menu deleted (noop)", "menu_id", menuID)
	return nil
}

// Verify interface implementation
var _ ports.MenuEventPublisher = (*NoopPublisher)(nil)
