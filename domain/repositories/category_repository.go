package repositories

import (
	"context"

	"menu-api/domain/models"
)

type CategoryRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	// FirstOrCreateByName หา category ตามชื่อ ถ้าไม่มีก็สร้าง (ใช้ตอน seed)
	FirstOrCreateByName(ctx context.Context, name string) (*models.Category, error)
	// List คืนทุก category ตามลำดับที่ database คืนมา
	List(ctx context.Context) ([]*models.Category, error)
}
