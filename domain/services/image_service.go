package services

import (
	"context"
	"io"
	"time"
)

// ImageFile รูปที่เปิดจาก upload directory พร้อมเสิร์ฟ
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

type ImageService interface {
	// Open เปิดรูปใน upload directory ผู้เรียกต้อง Close เอง
	Open(ctx context.Context, filename string) (*ImageFile, error)
}

// ImageCleanupService ลบรูปที่ไม่มีเมนูอ้างอิงแล้ว
type ImageCleanupService interface {
	RunCleanup(ctx context.Context) (*CleanupReport, error)

	// RegisterCleanupJob ลงทะเบียน job กับ scheduler
	RegisterCleanupJob() error
}

type CleanupReport struct {
	Scanned  int           `json:"scanned"`
	Deleted  int           `json:"deleted"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}
