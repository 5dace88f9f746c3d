package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"menu-api/domain/ports"
	"menu-api/pkg/logger"
	"menu-api/pkg/utils"
)

// AWSStorage implements ImageStorage สำหรับ Amazon S3
// reference ที่คืนคือ https://{bucket}.s3.{region}.amazonaws.com/{key}
type AWSStorage struct {
	client   *s3.Client
	bucket   string
	region   string
	endpoint string // ว่าง = AWS จริง
}

type AWSStorageConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string // optional เช่น http://localhost:4566 (localstack)
}

func NewAWSStorage(ctx context.Context, cfg AWSStorageConfig) (*AWSStorage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		config.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := strings.TrimSuffix(cfg.Endpoint, "/")
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info("AWS S3 storage initialized", "bucket", cfg.Bucket, "region", cfg.Region)

	return &AWSStorage{
		client:   client,
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: endpoint,
	}, nil
}

var _ ports.ImageStorage = (*AWSStorage)(nil)

func (a *AWSStorage) Upload(ctx context.Context, file io.Reader, size int64, key string, contentType string) (string, error) {
	key = normalizeKey(key)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := a.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	logger.DebugContext(ctx, "Image uploaded to AWS S3", "key", key, "size", size)
	return a.URL(key), nil
}

// Delete ใช้ข้อความหลัง / ตัวสุดท้ายของ reference เป็น key
func (a *AWSStorage) Delete(ctx context.Context, ref string) error {
	key := utils.KeyFromRef(ref)

	_, err := a.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(a.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete from S3: %w", err)
	}

	logger.DebugContext(ctx, "Image deleted from AWS S3", "key", key)
	return nil
}

func (a *AWSStorage) URL(key string) string {
	key = normalizeKey(key)
	if a.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", a.endpoint, a.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.bucket, a.region, key)
}

func (a *AWSStorage) List(ctx context.Context) ([]ports.StoredObject, error) {
	var objects []ports.StoredObject

	paginator := s3.NewListObjectsV2Paginator(a.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(a.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			objects = append(objects, ports.StoredObject{
				Key:          key,
				Ref:          a.URL(key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}
	return objects, nil
}

func (a *AWSStorage) ProviderName() string {
	return "aws"
}

// EnsureBucket สร้าง bucket ถ้ายังไม่มี (ใช้กับ cmd/setup-bucket)
func (a *AWSStorage) EnsureBucket(ctx context.Context) (created bool, err error) {
	_, err = a.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(a.bucket)})
	if err == nil {
		return false, nil
	}

	var notFound *types.NotFound
	if !errors.As(err, &notFound) {
		return false, fmt.Errorf("failed to check bucket: %w", err)
	}

	input := &s3.CreateBucketInput{Bucket: aws.String(a.bucket)}
	// us-east-1 ห้ามส่ง LocationConstraint
	if a.region != "" && a.region != "us-east-1" {
		input.CreateBucketConfiguration = &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(a.region),
		}
	}
	if _, err := a.client.CreateBucket(ctx, input); err != nil {
		return false, fmt.Errorf("failed to create bucket: %w", err)
	}
	return true, nil
}

// SetPublicReadPolicy เปิดให้อ่านรูปได้แบบ public
func (a *AWSStorage) SetPublicReadPolicy(ctx context.Context) error {
	_, err := a.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(a.bucket),
		Policy: aws.String(PublicReadPolicy(a.bucket)),
	})
	return err
}
