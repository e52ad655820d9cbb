package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	DocCacheSizeMB int    `toml:"doc_cache_size_mb"`
	// http
	AllowedOrigins []string      `toml:"allowed_origins"`
	SessionTTL     time.Duration `toml:"session_ttl"`
	// chat
	ChatPromptPath      string        `toml:"chat_prompt_path"`
	ChatConversationTTL time.Duration `toml:"chat_conversation_ttl"`
	ChatRequestsPerMin  int           `toml:"chat_requests_per_min"`
	// avatar
	AvatarAPIBaseURL   string   `toml:"avatar_api_base_url"`
	AvatarOutfitAssets []string `toml:"avatar_outfit_assets"`
	// jobs
	PruneWeeksSchedule     string        `toml:"prune_weeks_schedule"`
	PruneWeeksOlderThan    time.Duration `toml:"prune_weeks_older_than"`
	SessionCleanupSchedule string        `toml:"session_cleanup_schedule"`
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
	return cfg, cfg.validate()
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return t.Get(env)
}

func (c *Config) setDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.MetricsPort == 0 {
		c.MetricsPort = 2112
	}
	if c.DocCacheSizeMB == 0 {
		c.DocCacheSizeMB = 32
	}
	if c.SessionTTL == 0 {
		c.SessionTTL = 7 * 24 * time.Hour
	}
	if c.ChatConversationTTL == 0 {
		c.ChatConversationTTL = 6 * time.Hour
	}
	if c.ChatRequestsPerMin == 0 {
		c.ChatRequestsPerMin = 20
	}
	if c.PruneWeeksSchedule == "" {
		// seconds first, cron v1 format: every monday at 03:00
		c.PruneWeeksSchedule = "0 0 3 * * 1"
	}
	if c.PruneWeeksOlderThan == 0 {
		c.PruneWeeksOlderThan = 52 * 7 * 24 * time.Hour
	}
	if c.SessionCleanupSchedule == "" {
		c.SessionCleanupSchedule = "0 */30 * * * *"
	}
}

func (c *Config) validate() error {
	var errs []error
	if c.Port <= 0 {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.Port == c.MetricsPort {
		errs = append(errs, errors.New("metrics port must differ from port"))
	}
	if c.RedisHost == "" || c.RedisPort == "" {
		errs = append(errs, errors.New("redis host and port must be set"))
	}
	if c.PostgresHost == "" || c.PostgresPort == "" || c.PostgresDBName == "" {
		errs = append(errs, errors.New("postgres host, port and db name must be set"))
	}
	return errors.Join(errs...)
}
