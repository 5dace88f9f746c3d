package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"menu-api/application/serviceimpl"
	"menu-api/pkg/config"
	"menu-api/pkg/di"
)

// cleanup-images ลบรูปที่ไม่มีเมนูอ้างอิงทันที โดยไม่ต้องรอ cron
func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}
}

func run(args []string) error {
	container := di.NewContainer()
	if err := container.InitializeCore(); err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Cleanup()

	flags, grace := newFlagSet(container.GetConfig())
	if err := flags.Parse(args); err != nil {
		return err
	}

	// ไม่ลงทะเบียน cron จึงไม่ต้องใช้ scheduler
	cleanup := serviceimpl.NewImageCleanupService(
		serviceimpl.ImageCleanupConfig{Grace: *grace},
		container.MenuRepository,
		container.Storage,
		nil,
	)

	report, err := cleanup.RunCleanup(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("Storage: %s\n", container.Storage.ProviderName())
	fmt.Printf("Scanned %d images, deleted %d, failed %d (%s)\n",
		report.Scanned, report.Deleted, report.Failed, report.Duration.Round(time.Millisecond))
	return nil
}

// newFlagSet ค่า default ของ -grace มาจาก IMAGE_CLEANUP_GRACE
func newFlagSet(cfg *config.Config) (*flag.FlagSet, *time.Duration) {
	flags := flag.NewFlagSet("cleanup-images", flag.ContinueOnError)
	grace := flags.Duration("grace", cfg.Cleanup.Grace, "ไม่ลบรูปที่ใหม่กว่านี้")
	return flags, grace
}
