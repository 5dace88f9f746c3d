package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"menu-api/pkg/logger"
	"menu-api/pkg/scheduler"
	"menu-api/pkg/utils"
)

const healthCheckTimeout = 3 * time.Second

type HealthHandler struct {
	deps HealthDeps
}

func NewHealthHandler(deps HealthDeps) *HealthHandler {
	return &HealthHandler{deps: deps}
}

type HealthResponse struct {
	Status   string              `json:"status"`
	Profile  string              `json:"profile"`
	Storage  string              `json:"storage"`
	Database string              `json:"database"`
	Cache    string              `json:"cache"`
	Disk     *DiskUsage          `json:"disk,omitempty"`
	Jobs     []scheduler.JobInfo `json:"jobs,omitempty"`
}

type DiskUsage struct {
	*utils.DiskInfo
	Uploads      int64  `json:"uploads"`
	UploadsHuman string `json:"uploadsHuman"`
	FreeHuman    string `json:"freeHuman"`
}

// Check 200 ถ้า database ตอบ, 503 ถ้าไม่
// cache ล่มไม่ทำให้ unhealthy เพราะ service ถอยไปอ่าน DB เอง
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   "ok",
		Profile:  h.deps.Profile,
		Storage:  h.deps.StorageProvider,
		Database: "ok",
		Cache:    "disabled",
	}

	if h.deps.DBPing != nil {
		if err := h.deps.DBPing(ctx); err != nil {
			logger.ErrorContext(ctx, "Database health check failed", "error", err)
			resp.Status = "degraded"
			resp.Database = "down"
		}
	}

	if h.deps.CachePing != nil {
		resp.Cache = "ok"
		if err := h.deps.CachePing(ctx); err != nil {
			logger.WarnContext(ctx, "Cache health check failed", "error", err)
			resp.Cache = "down"
		}
	}

	if h.deps.UploadPath != "" {
		resp.Disk = diskUsage(ctx, h.deps.UploadPath)
	}

	if h.deps.Scheduler != nil {
		resp.Jobs = h.deps.Scheduler.ListJobs()
	}

	status := fiber.StatusOK
	if resp.Database != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(utils.Response{
		Success: status == fiber.StatusOK,
		Data:    resp,
	})
}

func diskUsage(ctx context.Context, path string) *DiskUsage {
	info, err := utils.GetDiskInfo(path)
	if err != nil {
		logger.WarnContext(ctx, "Failed to read disk info", "path", path, "error", err)
		return nil
	}

	uploads, err := utils.GetDirectorySize(path)
	if err != nil {
		logger.WarnContext(ctx, "Failed to size upload directory", "path", path, "error", err)
	}

	return &DiskUsage{
		DiskInfo:     info,
		Uploads:      uploads,
		UploadsHuman: utils.FormatBytes(uint64(uploads)),
		FreeHuman:    utils.FormatBytes(info.Free),
	}
}
