package serviceimpl

import (
	"context"
	"time"

	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/pkg/logger"
	"menu-api/pkg/scheduler"
	"menu-api/pkg/utils"
)

const imageCleanupJobID = "image_cleanup"

// ImageCleanupConfig การตั้งค่าสำหรับ cleanup
type ImageCleanupConfig struct {
	CronExpr string        // default: "0 4 * * *" = ตี 4 ทุกวัน
	Grace    time.Duration // รูปที่ใหม่กว่านี้ไม่ลบ (อาจกำลังถูก register อยู่)
}

// ImageCleanupServiceImpl ลบรูปที่ไม่มีเมนูอ้างอิง
// เกิดจากการลบรูปแบบ best-effort ตอนลบเมนู หรือ rollback ที่ไม่สำเร็จ
type ImageCleanupServiceImpl struct {
	config    ImageCleanupConfig
	menuRepo  repositories.MenuRepository
	storage   ports.ImageStorage
	scheduler scheduler.EventScheduler
	now       func() time.Time
}

var _ services.ImageCleanupService = (*ImageCleanupServiceImpl)(nil)

func NewImageCleanupService(
	config ImageCleanupConfig,
	menuRepo repositories.MenuRepository,
	storage ports.ImageStorage,
	eventScheduler scheduler.EventScheduler,
) *ImageCleanupServiceImpl {
	if config.CronExpr == "" {
		config.CronExpr = "0 4 * * *"
	}
	if config.Grace == 0 {
		config.Grace = 24 * time.Hour
	}

	return &ImageCleanupServiceImpl{
		config:    config,
		menuRepo:  menuRepo,
		storage:   storage,
		scheduler: eventScheduler,
		now:       time.Now,
	}
}

func (s *ImageCleanupServiceImpl) RegisterCleanupJob() error {
	return s.scheduler.AddJob(imageCleanupJobID, s.config.CronExpr, func() {
		ctx := logger.ContextWithRequestID(context.Background(), imageCleanupJobID)
		if _, err := s.RunCleanup(ctx); err != nil {
			logger.ErrorContext(ctx, "Image cleanup failed", "error", err)
		}
	})
}

func (s *ImageCleanupServiceImpl) RunCleanup(ctx context.Context) (*services.CleanupReport, error) {
	started := s.now()
	logger.InfoContext(ctx, "Starting image cleanup", "provider", s.storage.ProviderName())

	refs, err := s.menuRepo.ListImageRefs(ctx)
	if err != nil {
		return nil, err
	}
	inUse := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		inUse[utils.KeyFromRef(ref)] = struct{}{}
	}

	objects, err := s.storage.List(ctx)
	if err != nil {
		return nil, err
	}

	cutoff := started.Add(-s.config.Grace)
	report := &services.CleanupReport{}
	for _, obj := range objects {
		report.Scanned++

		if _, ok := inUse[utils.KeyFromRef(obj.Key)]; ok {
			continue
		}
		if obj.LastModified.After(cutoff) {
			continue
		}

		if err := s.storage.Delete(ctx, obj.Ref); err != nil {
			report.Failed++
			logger.WarnContext(ctx, "Failed to delete orphaned image", "key", obj.Key, "error", err)
			continue
		}
		report.Deleted++
		logger.DebugContext(ctx, "Deleted orphaned image", "key", obj.Key)
	}

	report.Duration = s.now().Sub(started)
	logger.InfoContext(ctx, "Image cleanup completed",
		"scanned", report.Scanned,
		"deleted", report.Deleted,
		"failed", report.Failed,
	)
	return report, nil
}
