package services

import (
	"context"
	"mime/multipart"

	"menu-api/domain/dto"
	"menu-api/domain/models"
)

type MenuService interface {
	// ListOrderable เมนูที่สั่งได้ทั้งหมด เรียงจากใหม่ไปเก่า
	ListOrderable(ctx context.Context) ([]*models.Menu, error)

	// ListByCategory เมนูที่สั่งได้ใน category เรียงตาม id
	ListByCategory(ctx context.Context, categoryID uint) ([]*models.Menu, error)

	GetByID(ctx context.Context, id uint) (*models.Menu, error)

	// Register สร้างเมนูใหม่ image เป็น nil ได้
	Register(ctx context.Context, req *dto.RegisterMenuRequest, image *multipart.FileHeader) (*models.Menu, error)

	// Delete ลบเมนูและรูป (ลบรูปไม่สำเร็จไม่ถือว่า error)
	Delete(ctx context.Context, id uint) error
}
