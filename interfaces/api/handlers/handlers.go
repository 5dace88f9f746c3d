package handlers

import (
	"context"

	"menu-api/domain/services"
	"menu-api/pkg/scheduler"
)

// Services contains all the services needed for handlers
type Services struct {
	CategoryService services.CategoryService
	MenuService     services.MenuService
	ImageService    services.ImageService
	Health          HealthDeps
}

// HealthDeps ข้อมูลสำหรับ /health (ฟิลด์ที่เป็น nil = ไม่ได้เปิดใช้)
type HealthDeps struct {
	Profile         string
	StorageProvider string
	UploadPath      string // ว่าง = ไม่รายงาน disk

	DBPing    func(ctx context.Context) error
	CachePing func(ctx context.Context) error
	Scheduler scheduler.EventScheduler
}

// Handlers contains all HTTP handlers
type Handlers struct {
	CategoryHandler *CategoryHandler
	MenuHandler     *MenuHandler
	ImageHandler    *ImageHandler
	HealthHandler   *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		CategoryHandler: NewCategoryHandler(services.CategoryService, services.MenuService),
		MenuHandler:     NewMenuHandler(services.MenuService),
		ImageHandler:    NewImageHandler(services.ImageService),
		HealthHandler:   NewHealthHandler(services.Health),
	}
}
