package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Port          string
	BaseURL       string
	CatalogPath   string
	BucketName    string
	CatalogPrefix string
	ContentDir    string
	ViewsDir      string
	PublicDir     string
	SecretKey     string
	CacheTTL      time.Duration
	PersonName    string
	PersonAvatar  string
	LogLevel      string
	DevMode       bool
}

// ErrInvalidPort is returned when PORT is not a valid TCP port
var ErrInvalidPort = errors.New("PORT must be a number between 1 and 65535")

// ErrInvalidCacheTTL is returned when CACHE_TTL is not a positive duration
var ErrInvalidCacheTTL = errors.New("CACHE_TTL must be a positive duration")

const (
	defaultPort          = "8080"
	defaultCatalogPrefix = "catalog/"
	defaultCacheTTL      = 5 * time.Minute
)

// Load loads configuration from environment variables
func Load() (*Config, error) {
	port := getenv("PORT", defaultPort)
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}

	cacheTTL := defaultCacheTTL
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCacheTTL, raw)
		}
		cacheTTL = d
	}

	return &Config{
		Port:          port,
		BaseURL:       strings.TrimRight(getenv("BASE_URL", "http://localhost:"+port), "/"),
		CatalogPath:   strings.TrimSpace(os.Getenv("CATALOG_PATH")),
		BucketName:    strings.TrimSpace(os.Getenv("BUCKET_NAME")),
		CatalogPrefix: getenv("CATALOG_PREFIX", defaultCatalogPrefix),
		ContentDir:    getenv("CONTENT_DIR", "content"),
		ViewsDir:      getenv("VIEWS_DIR", "views"),
		PublicDir:     getenv("PUBLIC_DIR", "public"),
		SecretKey:     strings.TrimSpace(os.Getenv("SECRET_KEY")),
		CacheTTL:      cacheTTL,
		PersonName:    getenv("PERSON_NAME", "Portfolio Owner"),
		PersonAvatar:  getenv("PERSON_AVATAR", "/images/avatar.jpg"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DevMode:       os.Getenv("DEV") != "",
	}, nil
}

// ServerAddress returns the server address with port
func (c *Config) ServerAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// AdminEnabled reports whether the secret admin routes are mounted
func (c *Config) AdminEnabled() bool {
	return c.SecretKey != ""
}

// CatalogSourceName describes where the catalog is read from
func (c *Config) CatalogSourceName() string {
	switch {
	case c.BucketName != "":
		return fmt.Sprintf("gs://%s/%s", c.BucketName, c.CatalogPrefix)
	case c.CatalogPath != "":
		return c.CatalogPath
	default:
		return "embedded"
	}
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
