// Package config reads runtime configuration from FIELDCRM_-prefixed
// environment variables.
package config

import (
	"log/slog"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"fieldcrm/internal/blob"
	"fieldcrm/internal/store"
)

// Config holds runtime configuration for the CRM service.
type Config struct {
	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"sqlite"`
	SQLitePath    string `envconfig:"SQLITE_PATH" default:"fieldcrm.db"`
	PostgresDSN   string `envconfig:"POSTGRES_DSN" default:"postgres://localhost/fieldcrm?sslmode=disable"`

	BlobDriver     string `envconfig:"BLOB_DRIVER" default:"fs"`
	BlobFSRoot     string `envconfig:"BLOB_FS_ROOT" default:"./archives"`
	S3Bucket       string `envconfig:"BLOB_S3_BUCKET"`
	S3Region       string `envconfig:"BLOB_S3_REGION"`
	S3Endpoint     string `envconfig:"BLOB_S3_ENDPOINT"`
	S3AccessKeyID  string `envconfig:"BLOB_S3_ACCESS_KEY_ID"`
	S3SecretKey    string `envconfig:"BLOB_S3_SECRET_ACCESS_KEY"`
	S3SessionToken string `envconfig:"BLOB_S3_SESSION_TOKEN"`
	S3UsePathStyle bool   `envconfig:"BLOB_S3_PATH_STYLE"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("FIELDCRM", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// StoreDriver maps the configured storage driver name.
func (c *Config) StoreDriver() store.Driver { return store.Driver(c.StorageDriver) }

// BlobOptions maps the archive-store configuration.
func (c *Config) BlobOptions() blob.Options {
	return blob.Options{
		Driver: blob.Driver(c.BlobDriver),
		FSRoot: c.BlobFSRoot,
		S3: blob.S3Config{
			Region:          c.S3Region,
			Bucket:          c.S3Bucket,
			Endpoint:        c.S3Endpoint,
			AccessKeyID:     c.S3AccessKeyID,
			SecretAccessKey: c.S3SecretKey,
			SessionToken:    c.S3SessionToken,
			PathStyle:       c.S3UsePathStyle,
		},
	}
}

// SlogLevel parses the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
