package services

import (
	"context"

	"menu-api/domain/models"
)

type CategoryService interface {
	// List ดึง categories ทั้งหมด
	List(ctx context.Context) ([]*models.Category, error)

	// GetByID ดึง category ตาม ID (ErrCategoryNotFound ถ้าไม่มี)
	GetByID(ctx context.Context, id uint) (*models.Category, error)

	// EnsureDefaults สร้าง categories เริ่มต้นที่ยังไม่มี
	EnsureDefaults(ctx context.Context, names []string) error
}
