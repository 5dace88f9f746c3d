package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Profile คือโหมด deployment ที่กำหนดว่าจะเก็บรูปเมนูไว้ที่ไหน
const (
	ProfileLocal = "local" // เก็บไฟล์ใน UPLOAD_PATH
	ProfileAWS   = "aws"   // Amazon S3 ผ่าน aws-sdk-go-v2
	ProfileMinIO = "minio" // S3-compatible (MinIO / R2) ผ่าน minio-go
)

// Database drivers ที่รองรับ
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Upload   UploadConfig
	AWS      AWSConfig
	S3       S3Config
	Redis    RedisConfig
	NATS     NATSConfig
	Cleanup  CleanupConfig
	Log      LogConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Env     string
	Profile string // local, aws, minio

	// StaticDir โฟลเดอร์ frontend (ว่าง = ไม่เสิร์ฟ)
	StaticDir string

	// CORSOrigins คั่นด้วย comma
	CORSOrigins string

	// AdminJWTSecret ถ้าตั้งไว้ POST/DELETE /api/menus ต้องมี token ของ admin
	AdminJWTSecret string
}

type DatabaseConfig struct {
	Driver     string // postgres, mysql, sqlite
	Host       string
	Port       string
	User       string
	Password   string
	DBName     string
	SSLMode    string
	SQLitePath string
	Seed       bool // สร้าง categories เริ่มต้น
}

type UploadConfig struct {
	Path         string // ./uploads
	MaxImageSize int64  // bytes
}

// AWSConfig สำหรับ profile "aws"
type AWSConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string // optional, ใช้กับ localstack
}

// S3Config สำหรับ profile "minio" (MinIO / Cloudflare R2)
type S3Config struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	Region    string
	PublicURL string // optional
}

// RedisConfig สำหรับ cache รายการเมนู (URL ว่าง = ปิด cache)
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	TTL      time.Duration
}

// NATSConfig สำหรับ publish menu events (URL ว่าง = ปิด)
type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

// CleanupConfig สำหรับ job ลบรูปที่ไม่มีเมนูอ้างอิง
type CleanupConfig struct {
	Enabled  bool
	CronExpr string
	Grace    time.Duration
}

type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string // logs/app.log
	MaxSize    int    // MB
	MaxBackups int
	MaxAge     int // วัน
	Compress   bool
}

func LoadConfig() (*Config, error) {
	// ไม่มี .env ก็ได้ ใช้ environment variables แทน
	_ = godotenv.Load()

	logMaxSize, _ := strconv.Atoi(getEnv("LOG_MAX_SIZE", "100"))
	logMaxBackups, _ := strconv.Atoi(getEnv("LOG_MAX_BACKUPS", "5"))
	logMaxAge, _ := strconv.Atoi(getEnv("LOG_MAX_AGE", "30"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))

	maxImageSize, err := strconv.ParseInt(getEnv("UPLOAD_MAX_IMAGE_SIZE", "10485760"), 10, 64) // 10MB
	if err != nil {
		return nil, fmt.Errorf("invalid UPLOAD_MAX_IMAGE_SIZE: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cleanupGrace, err := time.ParseDuration(getEnv("IMAGE_CLEANUP_GRACE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMAGE_CLEANUP_GRACE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:           getEnv("APP_NAME", "Menu API"),
			Port:           getEnv("APP_PORT", "8080"),
			Env:            getEnv("APP_ENV", "development"),
			Profile:        strings.ToLower(getEnv("APP_PROFILE", ProfileLocal)),
			StaticDir:      getEnv("APP_STATIC_DIR", ""),
			CORSOrigins:    getEnv("APP_CORS_ORIGINS", "*"),
			AdminJWTSecret: getEnv("APP_ADMIN_JWT_SECRET", ""),
		},
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "menu"),
			SSLMode:    getEnv("DB_SSL_MODE", "disable"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "menu.db"),
			Seed:       getBool("DB_SEED", false),
		},
		Upload: UploadConfig{
			Path:         getEnv("UPLOAD_PATH", "./uploads"),
			MaxImageSize: maxImageSize,
		},
		AWS: AWSConfig{
			AccessKey: getEnv("AWS_ACCESS_KEY", ""),
			SecretKey: getEnv("AWS_SECRET_KEY", ""),
			Bucket:    getEnv("AWS_S3_BUCKET", ""),
			Region:    getEnv("AWS_REGION", "ap-northeast-2"),
			Endpoint:  getEnv("AWS_S3_ENDPOINT", ""),
		},
		S3: S3Config{
			Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("S3_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("S3_BUCKET", "menu-images"),
			UseSSL:    getBool("S3_USE_SSL", false),
			Region:    getEnv("S3_REGION", "auto"),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       redisDB,
			TTL:      cacheTTL,
		},
		NATS: NATSConfig{
			URL:           getEnv("NATS_URL", ""),
			SubjectPrefix: getEnv("NATS_SUBJECT_PREFIX", "menu"),
		},
		Cleanup: CleanupConfig{
			Enabled:  getBool("IMAGE_CLEANUP_ENABLED", false),
			CronExpr: getEnv("IMAGE_CLEANUP_CRON", "0 4 * * *"),
			Grace:    cleanupGrace,
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			FilePath:   getEnv("LOG_FILE", "logs/app.log"),
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackups,
			MaxAge:     logMaxAge,
			Compress:   getBool("LOG_COMPRESS", true),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ตรวจสอบค่าที่ต้องมีตาม profile และ driver
func (c *Config) Validate() error {
	switch c.App.Profile {
	case ProfileLocal:
		if c.Upload.Path == "" {
			return errors.New("UPLOAD_PATH is required for local profile")
		}
	case ProfileAWS:
		if c.AWS.Bucket == "" || c.AWS.Region == "" {
			return errors.New("AWS_S3_BUCKET and AWS_REGION are required for aws profile")
		}
		if c.AWS.AccessKey == "" || c.AWS.SecretKey == "" {
			return errors.New("AWS_ACCESS_KEY and AWS_SECRET_KEY are required for aws profile")
		}
	case ProfileMinIO:
		if c.S3.Endpoint == "" || c.S3.Bucket == "" {
			return errors.New("S3_ENDPOINT and S3_BUCKET are required for minio profile")
		}
	default:
		return fmt.Errorf("unknown APP_PROFILE %q (expected local, aws or minio)", c.App.Profile)
	}

	switch c.Database.Driver {
	case DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unknown DB_DRIVER %q (expected postgres, mysql or sqlite)", c.Database.Driver)
	}

	if c.Upload.MaxImageSize <= 0 {
		return errors.New("UPLOAD_MAX_IMAGE_SIZE must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}

// IsDevelopment ตรวจสอบว่าเป็น development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction ตรวจสอบว่าเป็น production mode
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// IsCloudProfile true ถ้ารูปเก็บบน object storage
func (c *Config) IsCloudProfile() bool {
	return c.App.Profile == ProfileAWS || c.App.Profile == ProfileMinIO
}
