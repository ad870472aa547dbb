package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `validate:"required,numeric"`
	Debug       bool
	DataDir     string `validate:"required"`
	ServiceName string `validate:"required"`
	CORSOrigins []string

	// RequestTimeout bounds each HTTP request, including digesting large images
	RequestTimeout time.Duration `validate:"gt=0"`

	// Digest engine
	DigestBufferSize datasize.ByteSize `validate:"gt=0"`
	DigestCache      bool

	// Conversion backend
	Converter         string        `validate:"oneof=none qemu-img zstd lz4"`
	QemuImgPath       string        `validate:"required_if=Converter qemu-img"`
	ConvertTimeout    time.Duration `validate:"gt=0"`
	MaxConcurrentJobs int           `validate:"min=1"`
	JobRetention      time.Duration `validate:"gt=0"`

	// OpenTelemetry
	OtelEnabled  bool
	OtelEndpoint string
}

// Load loads configuration from environment variables
// Automatically loads .env file if present
func Load() *Config {
	// Try to load .env file (fail silently if not present)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "5000"),
		Debug:             getEnvBool("DEBUG", false),
		DataDir:           getEnv("DATA_DIR", "./storage"),
		ServiceName:       getEnv("SERVICE_NAME", "python-image-processor"),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Minute),
		DigestBufferSize:  getEnvSize("DIGEST_BUFFER_SIZE", datasize.MB),
		DigestCache:       getEnvBool("DIGEST_CACHE", false),
		Converter:         getEnv("CONVERTER", "none"),
		QemuImgPath:       getEnv("QEMU_IMG_PATH", "qemu-img"),
		ConvertTimeout:    getEnvDuration("CONVERT_TIMEOUT", 30*time.Minute),
		MaxConcurrentJobs: getEnvInt("MAX_CONCURRENT_JOBS", 1),
		JobRetention:      getEnvDuration("JOB_RETENTION", time.Hour),
		OtelEnabled:       getEnvBool("OTEL_ENABLED", false),
		OtelEndpoint:      getEnv("OTEL_ENDPOINT", ""),
	}

	return cfg
}

// Validate checks the loaded values against their constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvSize(key string, defaultValue datasize.ByteSize) datasize.ByteSize {
	if value := os.Getenv(key); value != "" {
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(value)); err == nil {
			return size
		}
	}
	return defaultValue
}
