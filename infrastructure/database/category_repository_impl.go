package database

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repositories.CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).Where("category_code = ?", id).First(&category).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) FirstOrCreateByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where(models.Category{Name: name}).
		FirstOrCreate(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// List ไม่มี ORDER BY ใช้ลำดับที่ database คืนมา
func (r *CategoryRepositoryImpl) List(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := r.db.WithContext(ctx).Find(&categories).Error
	return categories, err
}
