package config

import (
	"errors"
	"fmt"
	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"log"
	"net/http"
	"os"
	"time"
)

var DefaultAllowedFileTypes = []string{
	"image/jpeg",
	"image/png",
	"image/webp",
	"image/gif",
	"image/heic",
}

const (
	DefaultMaxFileSizeMB    = 50
	DefaultMaxFilesPerBatch = 20
	DefaultStorageTimeout   = 30 * time.Second
	DefaultSessionTTL       = 24 * time.Hour
	DefaultConsentVersion   = "1.0"
)

type AppConfig struct {
	Server         ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	Storage        StorageConfig  `yaml:"storage"`
	Session        SessionConfig  `yaml:"session"`
	Upload         UploadConfig   `yaml:"upload"`
	Consent        ConsentConfig  `yaml:"consent"`
	TTL            TTL            `yaml:"TTL"`
}

// LoadConfig : читает yaml, затем .env и переменные окружения поверх него
func LoadConfig(path string) (*AppConfig, error) {
	var cfg AppConfig

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		log.Printf("[config] файл %s не найден, используются переменные окружения", path)
	default:
		return nil, err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("[config] не удалось прочитать .env: %v", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyDefaults : заполняет незаданные поля значениями по умолчанию
func (cfg *AppConfig) ApplyDefaults() {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = "http://localhost:8080"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "simulated"
	}
	if len(cfg.Upload.AllowedFileTypes) == 0 {
		cfg.Upload.AllowedFileTypes = append([]string(nil), DefaultAllowedFileTypes...)
	}
	if cfg.Upload.MaxFileSizeMB == 0 {
		cfg.Upload.MaxFileSizeMB = DefaultMaxFileSizeMB
	}
	if cfg.Upload.MaxFilesPerBatch == 0 {
		cfg.Upload.MaxFilesPerBatch = DefaultMaxFilesPerBatch
	}
	if cfg.Consent.Version == "" {
		cfg.Consent.Version = DefaultConsentVersion
	}
	if cfg.TTL.Export == 0 {
		cfg.TTL.Export = 3600
	}
	if cfg.TTL.PresignedURLs == 0 {
		cfg.TTL.PresignedURLs = 900
	}
}

func (cfg *AppConfig) Validate() error {
	if cfg.Upload.MaxFileSizeMB < 0 {
		return fmt.Errorf("upload.max_file_size_mb должен быть положительным")
	}
	if cfg.Upload.MaxFilesPerBatch < 0 {
		return fmt.Errorf("upload.max_files_per_batch должен быть положительным")
	}
	if cfg.Session.SecretKey == "" {
		return fmt.Errorf("session.secret_key не задан")
	}
	switch cfg.Storage.Driver {
	case "s3", "minio", "simulated", "none":
	default:
		return fmt.Errorf("неизвестный драйвер хранилища: %s", cfg.Storage.Driver)
	}
	if cfg.Storage.Driver == "s3" && cfg.Storage.S3.Local &&
		(cfg.Storage.S3.AccessKey == "" || cfg.Storage.S3.SecretKey == "") {
		return fmt.Errorf("storage.s3.access_key и storage.s3.secret_key обязательны для локального S3")
	}
	if _, err := cfg.StorageTimeout(); err != nil {
		return err
	}
	if _, err := cfg.SessionTTL(); err != nil {
		return err
	}
	return nil
}

func (cfg *AppConfig) StorageTimeout() (time.Duration, error) {
	return parseDuration(cfg.Upload.StorageTimeout, DefaultStorageTimeout, "upload.storage_timeout")
}

func (cfg *AppConfig) SessionTTL() (time.Duration, error) {
	return parseDuration(cfg.Session.TTL, DefaultSessionTTL, "session.ttl")
}

func (cfg *AppConfig) SimulatedDelay() (time.Duration, error) {
	return parseDuration(cfg.Storage.Simulated.Delay, 0, "storage.simulated.delay")
}

func parseDuration(value string, fallback time.Duration, name string) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("неверный формат %s: %w", name, err)
	}
	return d, nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
