package ports

import (
	"context"
	"io"
	"time"
)

// ImageStorage คือ interface เดียวของที่เก็บรูปเมนู
// adapter ถูกเลือกครั้งเดียวตอน startup ตาม profile (local, aws, minio)
type ImageStorage interface {
	// Upload เก็บไฟล์ที่ key แล้วคืน reference ที่จะบันทึกลงเมนู
	// local: ชื่อไฟล์, cloud: public URL
	Upload(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error)

	// Delete ลบไฟล์จาก reference ที่ Upload เคยคืนมา
	Delete(ctx context.Context, ref string) error

	// URL สร้าง reference ของ key
	URL(key string) string

	// List รายการไฟล์ทั้งหมด (ใช้กับ cleanup job)
	List(ctx context.Context) ([]StoredObject, error)

	// ProviderName ชื่อ provider (local, aws, minio)
	ProviderName() string
}

// StoredObject ไฟล์หนึ่งไฟล์ใน storage
type StoredObject struct {
	Key          string
	Ref          string // ค่าเดียวกับที่ Upload คืนให้ key นี้
	Size         int64
	LastModified time.Time
}
