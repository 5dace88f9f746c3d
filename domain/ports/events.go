package ports

import (
	"context"

	"menu-api/domain/models"
)

// MenuEventPublisher แจ้ง downstream (kiosk, kitchen display) เมื่อเมนูเปลี่ยน
type MenuEventPublisher interface {
	MenuRegistered(ctx context.Context, menu *models.Menu) error
	MenuDeleted(ctx context.Context, menuID uint) error
}
