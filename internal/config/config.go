package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // timezone names work on hosts without zoneinfo

	"github.com/spf13/viper"
)

// Seed sources understood by SeedConfig.Source.
const (
	SeedSourceBundled = "bundled"
	SeedSourceFile    = "file"
	SeedSourceS3      = "s3"
	SeedSourceMongo   = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Seed     SeedConfig     `mapstructure:"seed"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	Workouts WorkoutsConfig `mapstructure:"workouts"`
	Viewer   ViewerConfig   `mapstructure:"viewer"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"` // gin mode: debug, release or test
}

// SeedConfig selects where the initial users and workouts snapshot comes from.
type SeedConfig struct {
	Source       string `mapstructure:"source"`
	UsersPath    string `mapstructure:"users_path"`    // file source
	WorkoutsPath string `mapstructure:"workouts_path"` // file source
	UsersKey     string `mapstructure:"users_key"`     // s3 source
	WorkoutsKey  string `mapstructure:"workouts_key"`  // s3 source
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// WorkoutsConfig controls the workout list and what "today" means.
type WorkoutsConfig struct {
	PageSize int    `mapstructure:"page_size"`
	Timezone string `mapstructure:"timezone"`
}

// ViewerConfig picks the user shown on the per-user page when the request
// does not name one.
type ViewerConfig struct {
	DefaultUserID string `mapstructure:"default_user_id"`
}

// Location resolves the configured timezone.
func (w WorkoutsConfig) Location() (*time.Location, error) {
	if w.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(w.Timezone)
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// --- Environment Variable Handling ---
	// Nested keys map to upper case with underscores: seed.source -> SEED_SOURCE
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// --- Defaults ---
	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("seed.source", SeedSourceBundled)
	v.SetDefault("seed.users_path", "")
	v.SetDefault("seed.workouts_path", "")
	v.SetDefault("seed.users_key", "users.json")
	v.SetDefault("seed.workouts_key", "workouts.json")
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "fitlog")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.access_key_id", "")
	v.SetDefault("s3.secret_access_key", "")
	v.SetDefault("s3.bucket_name", "")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("workouts.page_size", 10)
	v.SetDefault("workouts.timezone", "Local")
	v.SetDefault("viewer.default_user_id", "1")

	// --- Read Config File ---
	// A missing file is fine: defaults and env vars still apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks values that cannot be defaulted sensibly.
func (c Config) Validate() error {
	switch c.Seed.Source {
	case SeedSourceBundled, SeedSourceS3, SeedSourceMongo:
	case SeedSourceFile:
		if c.Seed.UsersPath == "" || c.Seed.WorkoutsPath == "" {
			return errors.New("seed.users_path and seed.workouts_path are required for the file seed source")
		}
	default:
		return fmt.Errorf("unknown seed.source %q", c.Seed.Source)
	}

	if c.Seed.Source == SeedSourceS3 && c.S3.BucketName == "" {
		return errors.New("s3.bucket_name is required for the s3 seed source")
	}

	if c.Workouts.PageSize < 1 {
		return fmt.Errorf("workouts.page_size must be positive, got %d", c.Workouts.PageSize)
	}
	if _, err := c.Workouts.Location(); err != nil {
		return fmt.Errorf("workouts.timezone: %w", err)
	}
	return nil
}
