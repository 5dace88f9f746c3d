package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
)

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
	cache        jsonCache
}

// NewCategoryService cache เป็น nil ได้
func NewCategoryService(categoryRepo repositories.CategoryRepository, cache ports.CachePort, cacheTTL time.Duration) services.CategoryService {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		cache:        jsonCache{cache: cache, ttl: cacheTTL},
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]*models.Category, error) {
	var cached []*models.Category
	if s.cache.get(ctx, cacheKeyCategories, &cached) {
		return cached, nil
	}

	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list categories", "error", err)
		return nil, err
	}

	s.cache.set(ctx, cacheKeyCategories, categories)
	return categories, nil
}

func (s *CategoryServiceImpl) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Category not found", "category_id", id)
			return nil, services.ErrCategoryNotFound
		}
		logger.ErrorContext(ctx, "Failed to get category", "category_id", id, "error", err)
		return nil, err
	}
	return category, nil
}

func (s *CategoryServiceImpl) EnsureDefaults(ctx context.Context, names []string) error {
	for _, name := range names {
		category, err := s.categoryRepo.FirstOrCreateByName(ctx, name)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", name, err)
		}
		logger.DebugContext(ctx, "Category ensured", "category_id", category.ID, "name", name)
	}

	s.cache.invalidate(ctx, cacheKeyCategories)
	logger.InfoContext(ctx, "Default categories ensured", "count", len(names))
	return nil
}
