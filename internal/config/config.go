package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis
	RedisHost string `toml:"redis_host"`
	RedisPort string `toml:"redis_port"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`

	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_allowed_per_min"`

	// derived athlete metrics are cached in memory for this long
	MetricsCacheSizeMB  int           `toml:"metrics_cache_size_mb"`
	MetricsCacheTTL     time.Duration `toml:"metrics_cache_ttl"`
	SessionCleanupEvery time.Duration `toml:"session_cleanup_every"`

	AllowedOrigins []string `toml:"allowed_origins"`
}

// Secrets are never kept in the TOML file, only in the environment.
type Secrets struct {
	AdminUsername     string `env:"ATHLETEHUB_ADMIN_USERNAME"`
	AdminPasswordHash string `env:"ATHLETEHUB_ADMIN_PASSWORD_HASH"`
	RedisPassword     string `env:"ATHLETEHUB_REDIS_PASS"`
	PostgresPassword  string `env:"ATHLETEHUB_POSTGRES_PASS"`
	MCPSecret         string `env:"ATHLETEHUB_MCP_SECRET"`
	SentryDSN         string `env:"SENTRY_DSN"`
	HoneycombEnabled  bool   `env:"HONEYCOMB_ENABLED" envDefault:"false"`
	HoneycombApiKey   string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName   string `env:"OTEL_SERVICE_NAME"`
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.LoginRateLimitAllowedPerMin == 0 {
		c.LoginRateLimitAllowedPerMin = 15
	}
	if c.MetricsCacheSizeMB == 0 {
		c.MetricsCacheSizeMB = 10
	}
	if c.MetricsCacheTTL == 0 {
		c.MetricsCacheTTL = 5 * time.Minute
	}
	if c.SessionCleanupEvery == 0 {
		c.SessionCleanupEvery = 8 * time.Hour
	}
}

func Load(env, configPath string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(configPath, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
	}
	return tomlConfig.Get(env)
}

func LoadSecrets() (*Secrets, error) {
	secrets, err := env.ParseAs[Secrets]()
	if err != nil {
		return nil, fmt.Errorf("parse secrets from env: %w", err)
	}
	return &secrets, nil
}
