package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/pkg/logger"
)

// Subjects (ต่อท้าย prefix เช่น menu.registered)
const (
	SubjectRegistered = "registered"
	SubjectDeleted    = "deleted"
)

// Publisher ส่ง menu events ผ่าน NATS core publish (ไม่ต้องมี JetStream)
type Publisher struct {
	nc     *nats.Conn
	prefix string
	logger *slog.Logger
}

var _ ports.MenuEventPublisher = (*Publisher)(nil)

type Config struct {
	URL           string // nats://localhost:4222
	SubjectPrefix string // menu
}

// Connect เชื่อมต่อ NATS แล้วสร้าง Publisher
func Connect(cfg Config) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name("menu-api"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	logger.Info("NATS connected", "url", cfg.URL, "prefix", cfg.SubjectPrefix)
	return NewPublisher(nc, cfg.SubjectPrefix), nil
}

func NewPublisher(nc *nats.Conn, prefix string) *Publisher {
	return &Publisher{
		nc:     nc,
		prefix: prefix,
		logger: logger.With("component", "nats_publisher"),
	}
}

// MenuRegistered payload คือ menu JSON แบบเดียวกับ API
func (p *Publisher) MenuRegistered(ctx context.Context, menu *models.Menu) error {
	return p.publish(ctx, SubjectRegistered, dto.MenuToMenuResponse(menu))
}

func (p *Publisher) MenuDeleted(ctx context.Context, menuID uint) error {
	return p.publish(ctx, SubjectDeleted, dto.MenuDeletedEvent{ID: menuID})
}

func (p *Publisher) publish(ctx context.Context, event string, payload any) error {
	subject := Subject(p.prefix, event)

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}

	if err := p.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	p.logger.DebugContext(ctx, "Event published", "subject", subject, "bytes", len(data))
	return nil
}

// Close flush message ที่ค้างแล้วปิด connection
func (p *Publisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}

// Subject ต่อ prefix กับชื่อ event
func Subject(prefix, event string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return event
	}
	return prefix + "." + event
}
