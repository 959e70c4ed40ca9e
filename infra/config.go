package infra

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env           string
	Port          string
	SecretKey     string
	TokenTTL      time.Duration
	AutoMigrate   bool
	UploadDir     string
	MaxUploadSize int64

	// FileStore は local / minio / cloudinary のいずれか
	FileStore      string
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
	CloudinaryURL  string

	RedisAddr     string
	RedisPassword string

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5 * 1024 * 1024
	}

	tokenTTL, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		log.Printf("Invalid TOKEN_TTL, falling back to 1h: %v", err)
		tokenTTL = time.Hour
	}

	cfg := &Config{
		Env:            getEnv("ENV", "dev"),
		Port:           getEnv("PORT", "8080"),
		SecretKey:      getEnv("SECRET_KEY", "dev-secret"),
		TokenTTL:       tokenTTL,
		AutoMigrate:    getEnv("AUTO_MIGRATE", "true") == "true",
		UploadDir:      getEnv("UPLOAD_DIR", "./images"),
		MaxUploadSize:  maxUploadSize,
		FileStore:      getEnv("FILE_STORE", "local"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "products"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
		CloudinaryURL:  os.Getenv("CLOUDINARY_URL"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		AdminEmail:     getEnv("ADMIN_EMAIL", "admin@boutique.local"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "admin"),
	}

	if cfg.Env == "prod" && cfg.SecretKey == "dev-secret" {
		log.Println("WARNING: SECRET_KEY is not set in prod")
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
