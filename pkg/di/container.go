package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"menu-api/application/serviceimpl"
	"menu-api/domain/models"
	"menu-api/domain/ports"
	"menu-api/domain/repositories"
	"menu-api/domain/services"
	"menu-api/infrastructure/database"
	natspkg "menu-api/infrastructure/nats"
	redispkg "menu-api/infrastructure/redis"
	"menu-api/infrastructure/storage"
	"menu-api/interfaces/api/handlers"
	"menu-api/pkg/config"
	"menu-api/pkg/logger"
	"menu-api/pkg/scheduler"
)

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client   // Redis client สำหรับ cache (optional)
	NATSPublisher  *natspkg.Publisher // NATS publisher (optional)
	Events         ports.MenuEventPublisher
	Storage        ports.ImageStorage // เลือกตาม APP_PROFILE
	EventScheduler scheduler.EventScheduler

	// Repositories
	CategoryRepository repositories.CategoryRepository
	MenuRepository     repositories.MenuRepository

	// Services
	CategoryService     services.CategoryService
	MenuService         services.MenuService
	ImageService        services.ImageService
	ImageCleanupService services.ImageCleanupService
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.InitializeCore(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

// InitializeCore ทุกอย่างยกเว้น scheduler (ใช้กับคำสั่งที่รันครั้งเดียว)
func (c *Container) InitializeCore() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initLogger(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initSeed(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Info("Configuration loaded", "profile", cfg.App.Profile, "driver", cfg.Database.Driver)
	return nil
}

func (c *Container) initLogger() error {
	logConfig := logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	}

	if err := logger.Init(logConfig); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
		"file", c.Config.Log.FilePath,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := database.DatabaseConfig{
		Driver:     c.Config.Database.Driver,
		Host:       c.Config.Database.Host,
		Port:       c.Config.Database.Port,
		User:       c.Config.Database.User,
		Password:   c.Config.Database.Password,
		DBName:     c.Config.Database.DBName,
		SSLMode:    c.Config.Database.SSLMode,
		SQLitePath: c.Config.Database.SQLitePath,
		LogLevel:   c.Config.Log.Level,
	}

	db, err := database.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", dbConfig.Driver, "host", dbConfig.Host, "db", dbConfig.DBName)

	// Run migrations
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database migrated")

	// Initialize Redis Client (optional - graceful degradation)
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			logger.Info("Redis client initialized", "ttl", c.Config.Redis.TTL)
		}
	}

	// Initialize NATS Publisher (optional)
	c.Events = natspkg.NewNoopPublisher()
	if c.Config.NATS.URL != "" {
		publisher, err := natspkg.Connect(natspkg.Config{
			URL:           c.Config.NATS.URL,
			SubjectPrefix: c.Config.NATS.SubjectPrefix,
		})
		if err != nil {
			logger.Warn("NATS initialization failed (events disabled)", "error", err)
		} else {
			c.NATSPublisher = publisher
			c.Events = publisher
		}
	}

	// Initialize Storage (Port/Adapter pattern)
	if err := c.initStorage(); err != nil {
		return err
	}

	return nil
}

// initStorage สร้าง storage adapter ตาม profile
func (c *Container) initStorage() error {
	switch c.Config.App.Profile {
	case config.ProfileAWS:
		awsStorage, err := storage.NewAWSStorage(context.Background(), storage.AWSStorageConfig{
			AccessKey: c.Config.AWS.AccessKey,
			SecretKey: c.Config.AWS.SecretKey,
			Bucket:    c.Config.AWS.Bucket,
			Region:    c.Config.AWS.Region,
			Endpoint:  c.Config.AWS.Endpoint,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize AWS storage: %w", err)
		}
		c.Storage = awsStorage

	case config.ProfileMinIO:
		// S3-Compatible Storage (MinIO / Cloudflare R2)
		s3Storage, err := storage.NewS3Storage(storage.S3StorageConfig{
			Endpoint:  c.Config.S3.Endpoint,
			AccessKey: c.Config.S3.AccessKey,
			SecretKey: c.Config.S3.SecretKey,
			Bucket:    c.Config.S3.Bucket,
			UseSSL:    c.Config.S3.UseSSL,
			Region:    c.Config.S3.Region,
			PublicURL: c.Config.S3.PublicURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 storage: %w", err)
		}
		c.Storage = s3Storage

	default:
		localStorage, err := storage.NewLocalStorage(storage.LocalStorageConfig{
			BasePath: c.Config.Upload.Path,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.Storage = localStorage
		logger.Info("Local Storage initialized", "path", c.Config.Upload.Path)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.CategoryRepository = database.NewCategoryRepository(c.DB)
	c.MenuRepository = database.NewMenuRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	// interface ที่ถือ *Client เป็น nil จะไม่ใช่ nil จึงต้องเช็คก่อน
	var cache ports.CachePort
	if c.RedisClient != nil {
		cache = c.RedisClient
	}

	c.CategoryService = serviceimpl.NewCategoryService(c.CategoryRepository, cache, c.Config.Redis.TTL)
	c.MenuService = serviceimpl.NewMenuService(
		c.MenuRepository,
		c.CategoryRepository,
		c.Storage,
		c.Events,
		cache,
		serviceimpl.MenuServiceConfig{
			MaxImageSize: c.Config.Upload.MaxImageSize,
			CacheTTL:     c.Config.Redis.TTL,
		},
	)
	c.ImageService = serviceimpl.NewImageService(c.Config.Upload.Path)

	logger.Info("Services initialized", "cache", cache != nil, "storage", c.Storage.ProviderName())
	return nil
}

func (c *Container) initSeed() error {
	if !c.Config.Database.Seed {
		return nil
	}
	if err := c.CategoryService.EnsureDefaults(context.Background(), models.DefaultCategoryNames); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	logger.Info("Default categories seeded", "count", len(models.DefaultCategoryNames))
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	if c.Config.Cleanup.Enabled {
		cleanup := serviceimpl.NewImageCleanupService(
			serviceimpl.ImageCleanupConfig{
				CronExpr: c.Config.Cleanup.CronExpr,
				Grace:    c.Config.Cleanup.Grace,
			},
			c.MenuRepository,
			c.Storage,
			c.EventScheduler,
		)
		if err := cleanup.RegisterCleanupJob(); err != nil {
			return fmt.Errorf("failed to register image cleanup job: %w", err)
		}
		c.ImageCleanupService = cleanup
		logger.Info("Image cleanup job registered", "cron", c.Config.Cleanup.CronExpr, "grace", c.Config.Cleanup.Grace)
	}

	// Start the scheduler
	c.EventScheduler.Start()
	logger.Info("Event scheduler started")
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	// Stop scheduler
	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
		logger.Info("Event scheduler stopped")
	}

	// Close NATS connection
	if c.NATSPublisher != nil {
		c.NATSPublisher.Close()
		logger.Info("NATS connection closed")
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	// Close database connection
	if c.DB != nil {
		if err := database.Close(c.DB); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		} else {
			logger.Info("Database connection closed")
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	health := handlers.HealthDeps{
		Profile:         c.Config.App.Profile,
		StorageProvider: c.Storage.ProviderName(),
		DBPing: func(ctx context.Context) error {
			return database.Ping(ctx, c.DB)
		},
		Scheduler: c.EventScheduler,
	}
	// disk ของ upload dir มีความหมายเฉพาะ profile local
	if c.Config.App.Profile == config.ProfileLocal {
		health.UploadPath = c.Config.Upload.Path
	}
	if c.RedisClient != nil {
		health.CachePing = c.RedisClient.Ping
	}

	return &handlers.Services{
		CategoryService: c.CategoryService,
		MenuService:     c.MenuService,
		ImageService:    c.ImageService,
		Health:          health,
	}
}
