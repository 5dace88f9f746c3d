package database

import (
	"context"

	"gorm.io/gorm"

	"menu-api/domain/models"
	"menu-api/domain/repositories"
)

type MenuRepositoryImpl struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) repositories.MenuRepository {
	return &MenuRepositoryImpl{db: db}
}

func (r *MenuRepositoryImpl) Create(ctx context.Context, menu *models.Menu) error {
	// Omit Category: ไม่ให้ GORM upsert category ที่ผูกมา
	return r.db.WithContext(ctx).Omit("Category").Create(menu).Error
}

func (r *MenuRepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	var menu models.Menu
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("menu_code = ?", id).
		First(&menu).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &menu, nil
}

func (r *MenuRepositoryImpl) Delete(ctx context.Context, menu *models.Menu) error {
	result := r.db.WithContext(ctx).Where("menu_code = ?", menu.ID).Delete(&models.Menu{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *MenuRepositoryImpl) ListOrderable(ctx context.Context) ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("menu_orderable = ?", models.OrderableYes).
		Order("menu_code DESC").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepositoryImpl) ListOrderableByCategory(ctx context.Context, categoryID uint) ([]*models.Menu, error) {
	var menus []*models.Menu
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("category_code = ? AND menu_orderable = ?", categoryID, models.OrderableYes).
		Order("menu_code ASC").
		Find(&menus).Error
	return menus, err
}

func (r *MenuRepositoryImpl) ListImageRefs(ctx context.Context) ([]string, error) {
	var refs []string
	err := r.db.WithContext(ctx).
		Model(&models.Menu{}).
		Where("menu_image_url IS NOT NULL AND menu_image_url <> ''").
		Pluck("menu_image_url", &refs).Error
	return refs, err
}
