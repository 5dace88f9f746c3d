package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"menu-api/domain/dto"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

type MenuServiceConfig struct {
	MaxImageSize int64 // bytes, 0 = ไม่จำกัด
	CacheTTL     time.Duration
}

type MenuServiceImpl struct {
	menuRepo     repositories.MenuRepository
	categoryRepo repositories.CategoryRepository
	storage      ports.ImageStorage
	events       ports.MenuEventPublisher
	cache        jsonCache
	maxImageSize int64
}

// NewMenuService cache เป็น nil ได้ events ต้องไม่เป็น nil (ใช้ noop แทน)
func NewMenuService(
	menuRepo repositories.MenuRepository,
	categoryRepo repositories.CategoryRepository,
	storage ports.ImageStorage,
	events ports.MenuEventPublisher,
	cache ports.CachePort,
	config MenuServiceConfig,
) services.MenuService {
	return &MenuServiceImpl{
		menuRepo:     menuRepo,
		categoryRepo: categoryRepo,
		storage:      storage,
		events:       events,
		cache:        jsonCache{cache: cache, ttl: config.CacheTTL},
		maxImageSize: config.MaxImageSize,
	}
}

func (s *MenuServiceImpl) ListOrderable(ctx context.Context) ([]*models.Menu, error) {
	var cached []*models.Menu
	if s.cache.get(ctx, cacheKeyOrderableMenus, &cached) {
		return cached, nil
	}

	menus, err := s.menuRepo.ListOrderable(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list menus", "error", err)
		return nil, err
	}

	s.cache.set(ctx, cacheKeyOrderableMenus, menus)
	return menus, nil
}

func (s *MenuServiceImpl) ListByCategory(ctx context.Context, categoryID uint) ([]*models.Menu, error) {
	if _, err := s.getCategory(ctx, categoryID); err != nil {
		return nil, err
	}

	key := cacheKeyCategoryMenus(categoryID)
	var cached []*models.Menu
	if s.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	menus, err := s.menuRepo.ListOrderableByCategory(ctx, categoryID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list menus by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	s.cache.set(ctx, key, menus)
	return menus, nil
}

func (s *MenuServiceImpl) GetByID(ctx context.Context, id uint) (*models.Menu, error) {
	menu, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			logger.WarnContext(ctx, "Menu not found", "menu_id", id)
			return nil, services.ErrMenuNotFound
		}
		logger.ErrorContext(ctx, "Failed to get menu", "menu_id", id, "error", err)
		return nil, err
	}
	return menu, nil
}

func (s *MenuServiceImpl) Register(ctx context.Context, req *dto.RegisterMenuRequest, image *multipart.FileHeader) (*models.Menu, error) {
	// 1. category ต้องมีอยู่ก่อน ไม่งั้นไม่แตะ storage/database เลย
	category, err := s.getCategory(ctx, req.CategoryID)
	if err != nil {
		return nil, err
	}

	// 2. อัปโหลดรูป (ถ้ามี)
	var imageRef *string
	if image != nil && image.Size > 0 {
		ref, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		imageRef = &ref
	}

	// 3. บันทึกเมนู
	categoryID := category.ID
	menu := &models.Menu{
		Name:        req.Name,
		Price:       intValue(req.Price),
		Description: optionalString(req.Description),
		Orderable:   models.OrderableYes,
		CategoryID:  &categoryID,
		ImageURL:    imageRef,
		Stock:       req.Stock,
	}

	if err := s.menuRepo.Create(ctx, menu); err != nil {
		logger.ErrorContext(ctx, "Failed to save menu, rolling back image", "name", req.Name, "error", err)
		if imageRef != nil {
			if delErr := s.storage.Delete(ctx, *imageRef); delErr != nil {
				logger.WarnContext(ctx, "Failed to roll back uploaded image", "ref", *imageRef, "error", delErr)
			}
		}
		return nil, err
	}
	menu.Category = category

	logger.InfoContext(ctx, "Menu registered", "menu_id", menu.ID, "name", menu.Name, "category_id", categoryID, "has_image", menu.HasImage())

	s.cache.invalidate(ctx, cacheKeyOrderableMenus, cacheKeyCategoryMenus(categoryID))
	if err := s.events.MenuRegistered(ctx, menu); err != nil {
		logger.WarnContext(ctx, "Failed to publish menu registered event", "menu_id", menu.ID, "error", err)
	}

	return menu, nil
}

func (s *MenuServiceImpl) Delete(ctx context.Context, id uint) error {
	menu, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// ลบรูปแบบ best-effort: พลาดก็ลบเมนูต่อ รูปที่ค้างจะถูก cleanup job เก็บ
	if menu.HasImage() {
		if err := s.storage.Delete(ctx, *menu.ImageURL); err != nil {
			logger.WarnContext(ctx, "Failed to delete menu image", "menu_id", id, "ref", *menu.ImageURL, "error", err)
		}
	}

	if err := s.menuRepo.Delete(ctx, menu); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrMenuNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete menu", "menu_id", id, "error", err)
		return err
	}

	logger.InfoContext(ctx, "Menu deleted", "menu_id", id)

	keys := []string{cacheKeyOrderableMenus}
	if menu.CategoryID != nil {
		keys = append(keys, cacheKeyCategoryMenus(*menu.CategoryID))
	}
	s.cache.invalidate(ctx, keys...)
	if err := s.events.MenuDeleted(ctx, id); err != nil {
		logger.WarnContext(ctx, "Failed to publish menu deleted event", "menu_id", id, "error", err)
	}

	return nil
}

func (s *MenuServiceImpl) getCategory(ctx context.Context, id uint) (*models.Category, error) {
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

// uploadImage ตรวจว่าเป็นรูปจริงแล้วอัปโหลด คืน reference ที่ storage ให้มา
func (s *MenuServiceImpl) uploadImage(ctx context.Context, image *multipart.FileHeader) (string, error) {
	if s.maxImageSize > 0 && image.Size > s.maxImageSize {
		logger.WarnContext(ctx, "Image too large", "filename", image.Filename, "size", image.Size, "max", s.maxImageSize)
		return "", services.ErrImageTooLarge
	}

	declared := image.Header.Get("Content-Type")
	if declared != "" && !strings.HasPrefix(declared, "image/") {
		logger.WarnContext(ctx, "Uploaded file is not an image", "filename", image.Filename, "content_type", declared)
		return "", services.ErrNotAnImage
	}

	file, err := image.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "filename", image.Filename, "error", err)
		return "", err
	}
	defer file.Close()

	// ดูจากเนื้อไฟล์ ไม่เชื่อ header อย่างเดียว
	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("failed to detect image type: %w", err)
	}
	if !strings.HasPrefix(detected.String(), "image/") {
		logger.WarnContext(ctx, "Uploaded content is not an image", "filename", image.Filename, "detected", detected.String())
		return "", services.ErrNotAnImage
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	key := utils.NewImageKey(image.Filename)
	ref, err := s.storage.Upload(ctx, file, image.Size, key, detected.String())
	if err != nil {
		logger.ErrorContext(ctx, "Failed to upload image", "key", key, "provider", s.storage.ProviderName(), "error", err)
		return "", err
	}

	logger.InfoContext(ctx, "Image uploaded", "key", key, "provider", s.storage.ProviderName(), "size", image.Size)
	return ref, nil
}

func intValue(value *int) int {
	if value == nil {
		return 0
	}
	return *value
}

func optionalString(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
