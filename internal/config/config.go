package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Catalog sources
const (
	CatalogSourceEmbedded = "embedded"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Site struct {
		SlideInterval      string `yaml:"slide_interval" env:"SITE_SLIDE_INTERVAL"`
		LoadingDelay       string `yaml:"loading_delay" env:"SITE_LOADING_DELAY"`
		SessionIdleTimeout string `yaml:"session_idle_timeout" env:"SITE_SESSION_IDLE_TIMEOUT"`
		SweepInterval      string `yaml:"sweep_interval" env:"SITE_SWEEP_INTERVAL"`
		MaxSessions        int    `yaml:"max_sessions" env:"SITE_MAX_SESSIONS"`
		AssetHost          string `yaml:"asset_host" env:"SITE_ASSET_HOST"`
		AssetExportPath    string `yaml:"asset_export_path" env:"SITE_ASSET_EXPORT_PATH"`
		FallbackImageURL   string `yaml:"fallback_image_url" env:"SITE_FALLBACK_IMAGE_URL"`
		DefaultLanguage    string `yaml:"default_language" env:"SITE_DEFAULT_LANGUAGE"`
	} `yaml:"site"`

	Catalog struct {
		Source string `yaml:"source" env:"CATALOG_SOURCE"`
		Path   string `yaml:"path" env:"CATALOG_PATH"`
	} `yaml:"catalog"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	Session struct {
		CookieName string `yaml:"cookie_name" env:"SESSION_COOKIE_NAME"`
		Secret     string `yaml:"secret" env:"SESSION_SECRET"`
		Issuer     string `yaml:"issuer" env:"SESSION_ISSUER"`
		TokenTTL   string `yaml:"token_ttl" env:"SESSION_TOKEN_TTL"`
		Secure     bool   `yaml:"secure" env:"SESSION_SECURE"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The file is optional; defaults plus env are enough to boot.
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Site.SlideInterval = "5s"
	config.Site.LoadingDelay = "600ms"
	config.Site.SessionIdleTimeout = "30m"
	config.Site.SweepInterval = "1m"
	config.Site.MaxSessions = 5000
	config.Site.AssetHost = "https://drive.google.com"
	config.Site.AssetExportPath = "/uc?export=view&id="
	config.Site.FallbackImageURL = "https://images.unsplash.com/photo-1557804506-669a67965ba0?q=80&w=2674&auto=format&fit=crop"
	config.Site.DefaultLanguage = "en"

	config.Catalog.Source = CatalogSourceEmbedded

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "wbvaa"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.Session.CookieName = "wbvaa_session"
	config.Session.Issuer = "wbvaa.portal"
	config.Session.TokenTTL = "24h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Session.Secret == "" {
		return fmt.Errorf("session secret is required")
	}

	durations := map[string]string{
		"site.slide_interval":       config.Site.SlideInterval,
		"site.loading_delay":        config.Site.LoadingDelay,
		"site.session_idle_timeout": config.Site.SessionIdleTimeout,
		"site.sweep_interval":       config.Site.SweepInterval,
		"session.token_ttl":         config.Session.TokenTTL,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if config.Site.MaxSessions < 0 {
		return fmt.Errorf("site.max_sessions must not be negative")
	}
	if _, err := url.ParseRequestURI(config.Site.AssetHost); err != nil {
		return fmt.Errorf("invalid site.asset_host: %w", err)
	}
	if !strings.HasPrefix(config.Site.AssetExportPath, "/") {
		return fmt.Errorf("site.asset_export_path must start with /")
	}

	switch config.Catalog.Source {
	case CatalogSourceEmbedded:
	case CatalogSourceFile:
		if strings.TrimSpace(config.Catalog.Path) == "" {
			return fmt.Errorf("catalog.path is required for the file source")
		}
	case CatalogSourcePostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres source")
		}
		if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
			return fmt.Errorf("invalid database.conn_max_lifetime format: %w", err)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", config.Catalog.Source)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
