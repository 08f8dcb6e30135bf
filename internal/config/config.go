package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	StaticDir   string `toml:"static_dir"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// postgres
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	SeedOnStartup  bool   `toml:"seed_on_startup"`

	// redis
	RedisHost           string `toml:"redis_host"`
	RedisPort           string `toml:"redis_port"`
	ProgressKey         string `toml:"progress_key"`
	WritesAllowedPerMin int    `toml:"writes_allowed_per_min"`

	// hiits list cache
	CacheEnabled    bool `toml:"cache_enabled"`
	CacheSizeMB     int  `toml:"cache_size_mb"`
	CacheTTLSeconds int  `toml:"cache_ttl_seconds"`

	// cors
	AllowedOrigins []string `toml:"allowed_origins"`

	// prometheus
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}

	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}

	cfg.setDefaults()
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.ProgressKey == "" {
		c.ProgressKey = "seefit:progress"
	}
	if c.WritesAllowedPerMin <= 0 {
		c.WritesAllowedPerMin = 60
	}
	if c.CacheSizeMB <= 0 {
		c.CacheSizeMB = 8
	}
	if c.CacheTTLSeconds <= 0 {
		c.CacheTTLSeconds = 60
	}
}
