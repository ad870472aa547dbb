package config

import (
	"testing"
	"time"

	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "DEBUG", "DATA_DIR", "SERVICE_NAME", "CORS_ORIGINS", "REQUEST_TIMEOUT",
		"DIGEST_BUFFER_SIZE", "DIGEST_CACHE", "CONVERTER", "QEMU_IMG_PATH",
		"CONVERT_TIMEOUT", "MAX_CONCURRENT_JOBS", "OTEL_ENABLED", "OTEL_ENDPOINT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "./storage", cfg.DataDir)
	assert.Equal(t, "python-image-processor", cfg.ServiceName)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, datasize.MB, cfg.DigestBufferSize)
	assert.Equal(t, "none", cfg.Converter)
	assert.Equal(t, 30*time.Minute, cfg.ConvertTimeout)
	assert.Equal(t, 10*time.Minute, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.MaxConcurrentJobs)
	assert.Equal(t, time.Hour, cfg.JobRetention)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DEBUG", "true")
	t.Setenv("DIGEST_BUFFER_SIZE", "64KB")
	t.Setenv("CONVERTER", "zstd")
	t.Setenv("CONVERT_TIMEOUT", "90s")
	t.Setenv("MAX_CONCURRENT_JOBS", "4")
	t.Setenv("JOB_RETENTION", "15m")

	cfg := Load()
	assert.Equal(t, "8081", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 64*datasize.KB, cfg.DigestBufferSize)
	assert.Equal(t, "zstd", cfg.Converter)
	assert.Equal(t, 90*time.Second, cfg.ConvertTimeout)
	assert.Equal(t, 4, cfg.MaxConcurrentJobs)
	assert.Equal(t, 15*time.Minute, cfg.JobRetention)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(*Config){
		"unknown converter": func(c *Config) { c.Converter = "gzip" },
		"port not numeric":  func(c *Config) { c.Port = "http" },
		"zero jobs":         func(c *Config) { c.MaxConcurrentJobs = 0 },
		"zero retention":    func(c *Config) { c.JobRetention = 0 },
		"empty data dir":    func(c *Config) { c.DataDir = "" },
		"qemu without path": func(c *Config) { c.Converter = "qemu-img"; c.QemuImgPath = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := &Config{
				Port:              "5000",
				DataDir:           "/tmp",
				ServiceName:       "svc",
				RequestTimeout:    time.Minute,
				DigestBufferSize:  datasize.MB,
				Converter:         "none",
				QemuImgPath:       "qemu-img",
				ConvertTimeout:    time.Minute,
				MaxConcurrentJobs: 1,
				JobRetention:      time.Hour,
			}
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
