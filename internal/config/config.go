package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Store backends selectable with STORE_BACKEND.
const (
	StoreBackendFile     = "file"
	StoreBackendMemory   = "memory"
	StoreBackendDynamoDB = "dynamodb"
	StoreBackendSQLite   = "sqlite"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Request store.
	StoreBackend         string `mapstructure:"STORE_BACKEND"`
	StorePath            string `mapstructure:"STORE_PATH"`
	SQLitePath           string `mapstructure:"SQLITE_PATH"`
	ServiceRequestsTable string `mapstructure:"SERVICE_REQUESTS_TABLE"`

	// DynamoDB connection (STORE_BACKEND=dynamodb).
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	// HTTP surface.
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	AllowedOrigins    string `mapstructure:"ALLOWED_ORIGINS"`
	MaxPhotoBytes     int64  `mapstructure:"MAX_PHOTO_BYTES"`
	// Comma separated proxy IPs or CIDRs whose forwarding headers are believed.
	// Empty trusts none, so the client IP is the TCP peer.
	TrustedProxies string `mapstructure:"TRUSTED_PROXIES"`

	// Business profile overrides.
	BusinessName   string `mapstructure:"BUSINESS_NAME"`
	EmergencyPhone string `mapstructure:"EMERGENCY_PHONE"`
}

var keys = []string{
	"APP_PORT", "ENV", "LOG_LEVEL",
	"STORE_BACKEND", "STORE_PATH", "SQLITE_PATH", "SERVICE_REQUESTS_TABLE",
	"AWS_REGION", "AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "DYNAMODB_ENDPOINT",
	"MAX_REQUESTS_PER_MIN", "ALLOWED_ORIGINS", "MAX_PHOTO_BYTES", "TRUSTED_PROXIES",
	"BUSINESS_NAME", "EMERGENCY_PHONE",
}

// Load reads config.yaml (current dir or ./config) when present, then environment
// variables, falling back to defaults.
func Load() (Config, error) {
	return load(viper.New(), true)
}

func load(v *viper.Viper, readFile bool) (Config, error) {
	if readFile {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}
	v.AutomaticEnv()

	// Unmarshal only sees keys viper knows about; bind every key so env-only values land.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_BACKEND", StoreBackendFile)
	v.SetDefault("STORE_PATH", "service_requests.json")
	v.SetDefault("SQLITE_PATH", "service_requests.db")
	v.SetDefault("SERVICE_REQUESTS_TABLE", "service_requests")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("MAX_PHOTO_BYTES", 10<<20)

	if readFile {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.StoreBackend = strings.ToLower(strings.TrimSpace(cfg.StoreBackend))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreBackend {
	case StoreBackendFile, StoreBackendMemory, StoreBackendDynamoDB, StoreBackendSQLite:
	default:
		return fmt.Errorf("unsupported STORE_BACKEND %q", c.StoreBackend)
	}
	if c.MaxRequestsPerMin <= 0 {
		return fmt.Errorf("MAX_REQUESTS_PER_MIN must be positive, got %d", c.MaxRequestsPerMin)
	}
	if c.MaxPhotoBytes <= 0 {
		return fmt.Errorf("MAX_PHOTO_BYTES must be positive, got %d", c.MaxPhotoBytes)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	out := splitList(c.AllowedOrigins)
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// Proxies splits TRUSTED_PROXIES on commas. Nil means no proxy is trusted.
func (c Config) Proxies() []string {
	return splitList(c.TrustedProxies)
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
