package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// remote workouts API
	HevyApiBaseURL           string `toml:"hevy_api_base_url"`
	HevyPageSize             int    `toml:"hevy_page_size"`
	FullSyncPageLimit        int    `toml:"full_sync_page_limit"`
	IncrementalSyncPageLimit int    `toml:"incremental_sync_page_limit"`
	SyncTimeoutSeconds       int    `toml:"sync_timeout_seconds"`

	// rate limits
	LoginRateLimitAllowedPerMin int `toml:"login_rate_limit_per_min"`
	SyncRateLimitAllowedPerMin  int `toml:"sync_rate_limit_per_min"`

	// dashboard
	DefaultBodyweightLb      float64 `toml:"default_bodyweight_lb"`
	DashboardCacheTTLSeconds int     `toml:"dashboard_cache_ttl_seconds"`
	RecentPRsLimit           int     `toml:"recent_prs_limit"`

	// browser origins allowed to call the API
	CorsAllowedOrigins []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development", "ddev", "dockerdev":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var tomlConfig Toml
	if _, err := toml.DecodeFile(path, &tomlConfig); err != nil {
		return nil, fmt.Errorf("decode toml config [%s]: %w", path, err)
	}
	return tomlConfig.Get(env)
}

func (c *Config) applyDefaults() {
	if c.HevyApiBaseURL == "" {
		c.HevyApiBaseURL = "https://api.hevyapp.com/v1"
	}
	if c.HevyPageSize <= 0 {
		c.HevyPageSize = 10
	}
	if c.FullSyncPageLimit <= 0 {
		c.FullSyncPageLimit = 200
	}
	if c.IncrementalSyncPageLimit <= 0 {
		c.IncrementalSyncPageLimit = 20
	}
	if c.SyncTimeoutSeconds <= 0 {
		c.SyncTimeoutSeconds = 120
	}
	if c.LoginRateLimitAllowedPerMin <= 0 {
		c.LoginRateLimitAllowedPerMin = 10
	}
	if c.SyncRateLimitAllowedPerMin <= 0 {
		c.SyncRateLimitAllowedPerMin = 6
	}
	if c.DefaultBodyweightLb <= 0 {
		c.DefaultBodyweightLb = 180
	}
	if c.DashboardCacheTTLSeconds <= 0 {
		c.DashboardCacheTTLSeconds = 300
	}
	if c.RecentPRsLimit <= 0 {
		c.RecentPRsLimit = 10
	}
}
