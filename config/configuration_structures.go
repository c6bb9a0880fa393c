package config

type ServerConfig struct {
	Addr    string `yaml:"addr" env:"SERVER_ADDR"`
	BaseURL string `yaml:"base_url" env:"BASE_URL"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn" env:"DATABASE_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB"`
}

// StorageConfig : выбор драйвера хранилища файлов (s3, minio, simulated)
type StorageConfig struct {
	Driver    string          `yaml:"driver" env:"STORAGE_DRIVER"`
	S3        S3Config        `yaml:"s3"`
	Minio     MinioConfig     `yaml:"minio"`
	Simulated SimulatedConfig `yaml:"simulated"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket" env:"S3_BUCKET"`
	Region   string `yaml:"region" env:"S3_REGION"`
	Endpoint string `yaml:"endpoint" env:"S3_ENDPOINT"`
	Local    bool   `yaml:"local" env:"S3_LOCAL"`
	// AccessKey, SecretKey : статические ключи для локального S3-совместимого сервера
	AccessKey string `yaml:"access_key" env:"S3_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"S3_SECRET_KEY"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKey string `yaml:"access_key" env:"MINIO_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MINIO_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env:"MINIO_BUCKET"`
	UseSSL    bool   `yaml:"use_ssl" env:"MINIO_USE_SSL"`
}

type SimulatedConfig struct {
	Delay string `yaml:"delay" env:"SIMULATED_UPLOAD_DELAY"`
}

// SessionConfig : подпись токенов гостевых сессий
type SessionConfig struct {
	SecretKey string `yaml:"secret_key" env:"SESSION_SECRET_KEY"`
	TTL       string `yaml:"ttl" env:"SESSION_TTL"`
}

// UploadConfig : политика загрузки по умолчанию, переопределяется при создании события
type UploadConfig struct {
	AllowedFileTypes []string `yaml:"allowed_file_types" env:"UPLOAD_ALLOWED_FILE_TYPES" envSeparator:","`
	MaxFileSizeMB    float64  `yaml:"max_file_size_mb" env:"UPLOAD_MAX_FILE_SIZE_MB"`
	MaxFilesPerBatch int      `yaml:"max_files_per_batch" env:"UPLOAD_MAX_FILES_PER_BATCH"`
	StorageTimeout   string   `yaml:"storage_timeout" env:"UPLOAD_STORAGE_TIMEOUT"`
}

// ConsentConfig : версия текстов согласия и ключ для хэширования IP
type ConsentConfig struct {
	Version   string `yaml:"version" env:"CONSENT_VERSION"`
	IPHashKey string `yaml:"ip_hash_key" env:"CONSENT_IP_HASH_KEY"`
}

type TTL struct {
	Export        int `yaml:"export" env:"TTL_EXPORT"`
	PresignedURLs int `yaml:"presigned_urls" env:"TTL_PRESIGNED_URLS"`
}
