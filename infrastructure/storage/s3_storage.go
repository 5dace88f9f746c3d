package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"menu-api/domain/ports"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// S3Storage implements ImageStorage สำหรับ S3-Compatible Storage (MinIO / Cloudflare R2)
type S3Storage struct {
	client    *minio.Client
	bucket    string
	publicURL string // URL สำหรับเข้าถึงไฟล์ public (ถ้ามี)
	endpoint  string
	useSSL    bool
}

type S3StorageConfig struct {
	Endpoint  string // minio:9000 หรือ xxx.r2.cloudflarestorage.com
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // optional
}

// NewS3Client สร้าง minio client (ยังไม่ต่อ server)
func NewS3Client(config S3StorageConfig) (*minio.Client, error) {
	transport := &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 20,
		IdleConnTimeout:     90 * time.Second,
	}

	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure:    config.UseSSL,
		Region:    config.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return client, nil
}

// NewS3Storage สร้าง S3Storage และสร้าง bucket ถ้ายังไม่มี
func NewS3Storage(config S3StorageConfig) (*S3Storage, error) {
	client, err := NewS3Client(config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := EnsureMinioBucket(ctx, client, config.Bucket, config.Region); err != nil {
		return nil, err
	}

	logger.Info("S3 storage initialized",
		"endpoint", config.Endpoint,
		"bucket", config.Bucket,
		"ssl", config.UseSSL,
	)

	return newS3Storage(client, config), nil
}

func newS3Storage(client *minio.Client, config S3StorageConfig) *S3Storage {
	return &S3Storage{
		client:    client,
		bucket:    config.Bucket,
		publicURL: strings.TrimSuffix(config.PublicURL, "/"),
		endpoint:  config.Endpoint,
		useSSL:    config.UseSSL,
	}
}

var _ ports.ImageStorage = (*S3Storage)(nil)

// EnsureMinioBucket สร้าง bucket ถ้ายังไม่มี
func EnsureMinioBucket(ctx context.Context, client *minio.Client, bucket, region string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}

	if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	logger.Info("S3 bucket created", "bucket", bucket)
	return nil
}

func (s *S3Storage) Upload(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	key = normalizeKey(key)
	if size <= 0 {
		// -1 ให้ minio อ่านจนจบ (streaming)
		size = -1
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, file, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logger.DebugContext(ctx, "Image uploaded to S3", "key", key, "content_type", contentType)
	return s.URL(key), nil
}

// Delete ใช้ข้อความหลัง / ตัวสุดท้ายของ reference เป็น key
func (s *S3Storage) Delete(ctx context.Context, ref string) error {
	key := utils.KeyFromRef(ref)

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logger.DebugContext(ctx, "Image deleted from S3", "key", key)
	return nil
}

// URL ใช้ public URL ถ้ามี ไม่งั้นสร้างจาก endpoint (path-style)
func (s *S3Storage) URL(key string) string {
	key = normalizeKey(key)

	if s.publicURL != "" {
		return s.publicURL + "/" + key
	}

	scheme := "http"
	if s.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.endpoint, s.bucket, key)
}

func (s *S3Storage) List(ctx context.Context) ([]ports.StoredObject, error) {
	// ยกเลิก lister ของ minio เมื่อ return กลางทาง
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objectsCh := s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true})

	var objects []ports.StoredObject
	for obj := range objectsCh {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", obj.Err)
		}
		objects = append(objects, ports.StoredObject{
			Key:          obj.Key,
			Ref:          s.URL(obj.Key),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func (s *S3Storage) ProviderName() string {
	return "minio"
}

// Client ใช้กับ cmd/setup-bucket
func (s *S3Storage) Client() *minio.Client {
	return s.client
}

func normalizeKey(key string) string {
	key = strings.ReplaceAll(key, "\\", "/")
	return strings.TrimPrefix(key, "/")
}
