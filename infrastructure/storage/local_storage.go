package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"menu-api/domain/ports"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// LocalStorage implements ImageStorage สำหรับเก็บรูปใน local filesystem
// reference ที่คืนให้เมนูคือชื่อไฟล์ เสิร์ฟผ่าน /api/images/{filename}
type LocalStorage struct {
	basePath string // ./uploads
}

type LocalStorageConfig struct {
	BasePath string
}

// NewLocalStorage สร้าง LocalStorage และสร้าง directory ถ้ายังไม่มี
func NewLocalStorage(config LocalStorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(config.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: config.BasePath}, nil
}

var _ ports.ImageStorage = (*LocalStorage)(nil)

// BasePath directory ที่เก็บรูป
func (l *LocalStorage) BasePath() string {
	return l.basePath
}

// Upload เขียนไฟล์ลง basePath/key
func (l *LocalStorage) Upload(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	key = utils.SanitizeFileName(key)
	fullPath := filepath.Join(l.basePath, key)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, file)
	if err != nil {
		// ลบไฟล์ที่เขียนไม่ครบ
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logger.DebugContext(ctx, "Image written to local storage", "key", key, "size", written)
	return l.URL(key), nil
}

// Delete ลบไฟล์ ถ้าไม่มีอยู่แล้วถือว่าสำเร็จ
func (l *LocalStorage) Delete(ctx context.Context, ref string) error {
	key := utils.SanitizeFileName(utils.KeyFromRef(ref))
	fullPath := filepath.Join(l.basePath, key)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.DebugContext(ctx, "Image deleted from local storage", "key", key)
	return nil
}

// URL local profile เก็บแค่ชื่อไฟล์
func (l *LocalStorage) URL(key string) string {
	return key
}

func (l *LocalStorage) List(ctx context.Context) ([]ports.StoredObject, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []ports.StoredObject{}, nil
		}
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	objects := make([]ports.StoredObject, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, ports.StoredObject{
			Key:          entry.Name(),
			Ref:          l.URL(entry.Name()),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}
	return objects, nil
}

func (l *LocalStorage) ProviderName() string {
	return "local"
}
