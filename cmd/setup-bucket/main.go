package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/minio/minio-go/v7"

	"menu-api/infrastructure/storage"
	"menu-api/pkg/config"
)

// setup-bucket สร้าง bucket สำหรับรูปเมนูตาม APP_PROFILE (aws หรือ minio)
// แล้วตั้ง policy ให้อ่านรูปได้แบบ public และทดสอบสิทธิ์ upload/delete
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("  Menu image bucket setup")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("\nProfile: %s\n", cfg.App.Profile)

	switch cfg.App.Profile {
	case config.ProfileMinIO:
		setupMinio(ctx, cfg.S3)
	case config.ProfileAWS:
		setupAWS(ctx, cfg.AWS)
	default:
		log.Fatalf("Profile %q stores images on local disk, nothing to set up", cfg.App.Profile)
	}

	fmt.Println("\n═══════════════════════════════════════════════════════════════")
	fmt.Println("  Done")
	fmt.Println("═══════════════════════════════════════════════════════════════")
}

func setupMinio(ctx context.Context, s3 config.S3Config) {
	fmt.Printf("Endpoint: %s\n", s3.Endpoint)
	fmt.Printf("Bucket: %s\n", s3.Bucket)
	fmt.Printf("Region: %s\n", s3.Region)

	client, err := storage.NewS3Client(storage.S3StorageConfig{
		Endpoint:  s3.Endpoint,
		AccessKey: s3.AccessKey,
		SecretKey: s3.SecretKey,
		Bucket:    s3.Bucket,
		UseSSL:    s3.UseSSL,
		Region:    s3.Region,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	if err := storage.EnsureMinioBucket(ctx, client, s3.Bucket, s3.Region); err != nil {
		log.Fatalf("Failed to ensure bucket: %v", err)
	}
	fmt.Printf("\n✓ Bucket '%s' ready\n", s3.Bucket)

	policy := storage.PublicReadPolicy(s3.Bucket)
	fmt.Println("\n--- Setting Bucket Policy ---")
	fmt.Println(policy)
	if err := client.SetBucketPolicy(ctx, s3.Bucket, policy); err != nil {
		log.Printf("⚠️  Warning: Failed to set policy: %v", err)
	} else {
		fmt.Println("✓ Bucket policy set successfully")
	}

	// Test regular PutObject (single upload)
	fmt.Println("\n--- Testing Basic Operations ---")
	fmt.Print("Testing PutObject... ")
	testKey := "setup-check.txt"
	testContent := []byte("menu-api upload permission check")
	_, err = client.PutObject(ctx, s3.Bucket, testKey,
		bytes.NewReader(testContent), int64(len(testContent)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		fmt.Printf("❌ Failed: %v\n", err)
		return
	}
	fmt.Println("✓ OK")

	fmt.Print("Testing RemoveObject... ")
	if err := client.RemoveObject(ctx, s3.Bucket, testKey, minio.RemoveObjectOptions{}); err != nil {
		fmt.Printf("❌ Failed: %v\n", err)
	} else {
		fmt.Println("✓ OK")
	}
}

func setupAWS(ctx context.Context, aws config.AWSConfig) {
	fmt.Printf("Bucket: %s\n", aws.Bucket)
	fmt.Printf("Region: %s\n", aws.Region)
	if aws.Endpoint != "" {
		fmt.Printf("Endpoint: %s\n", aws.Endpoint)
	}

	s3Storage, err := storage.NewAWSStorage(ctx, storage.AWSStorageConfig{
		AccessKey: aws.AccessKey,
		SecretKey: aws.SecretKey,
		Bucket:    aws.Bucket,
		Region:    aws.Region,
		Endpoint:  aws.Endpoint,
	})
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	created, err := s3Storage.EnsureBucket(ctx)
	if err != nil {
		log.Fatalf("Failed to ensure bucket: %v", err)
	}
	if created {
		fmt.Printf("\n✓ Bucket '%s' created\n", aws.Bucket)
	} else {
		fmt.Printf("\n✓ Bucket '%s' exists\n", aws.Bucket)
	}

	fmt.Println("\n--- Setting Bucket Policy ---")
	fmt.Println(storage.PublicReadPolicy(aws.Bucket))
	if err := s3Storage.SetPublicReadPolicy(ctx); err != nil {
		// bucket ใหม่ของ AWS เปิด Block Public Access ไว้ ต้องปิดใน console ก่อน
		log.Printf("⚠️  Warning: Failed to set policy: %v", err)
	} else {
		fmt.Println("✓ Bucket policy set successfully")
	}

	fmt.Println("\n--- Testing Basic Operations ---")
	fmt.Print("Testing ListObjectsV2... ")
	objects, err := s3Storage.List(ctx)
	if err != nil {
		fmt.Printf("❌ Failed: %v\n", err)
		return
	}
	fmt.Printf("✓ OK (%d objects)\n", len(objects))
}
