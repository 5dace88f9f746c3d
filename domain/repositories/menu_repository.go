package repositories

import (
	"context"

	"menu-api/domain/models"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *models.Menu) error
	GetByID(ctx context.Context, id uint) (*models.Menu, error)
	Delete(ctx context.Context, menu *models.Menu) error

	// ListOrderable เมนูที่ orderable = Y เรียง id มากไปน้อย
	ListOrderable(ctx context.Context) ([]*models.Menu, error)

	// ListOrderableByCategory เมนูที่สั่งได้ใน category เรียง id น้อยไปมาก
	ListOrderableByCategory(ctx context.Context, categoryID uint) ([]*models.Menu, error)

	// ListImageRefs image reference ทั้งหมดที่ยังมีเมนูใช้อยู่
	ListImageRefs(ctx context.Context) ([]string, error)
}
