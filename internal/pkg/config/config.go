package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Health  HealthConfig  `yaml:"health"`
	Refresh RefreshConfig `yaml:"refresh"`
	Source  SourceConfig  `yaml:"source"`
	Session SessionConfig `yaml:"session"`
	Storage StorageConfig `yaml:"storage"`
	Notify  NotifyConfig  `yaml:"notify"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error (default: info)
	JSONFile string `yaml:"json_file"` // optional JSON log file in addition to stdout
}

type HealthConfig struct {
	Port              int           `yaml:"port"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"` // how often to re-fetch live matches
	Timeout  time.Duration `yaml:"timeout"`  // per-refresh deadline
}

type SourceConfig struct {
	Enabled     string            `yaml:"enabled"` // apifootball, espn or sample
	Timeout     time.Duration     `yaml:"timeout"`
	UserAgent   string            `yaml:"user_agent"`
	APIFootball APIFootballConfig `yaml:"apifootball"`
	ESPN        ESPNConfig        `yaml:"espn"`
	Sample      SampleConfig      `yaml:"sample"`
}

type APIFootballConfig struct {
	BaseURL   string        `yaml:"base_url"`
	MirrorURL string        `yaml:"mirror_url"` // optional mirror to resolve actual base URL
	APIKey    string        `yaml:"api_key"`    // falls back to FOOTBALL_API_KEY env var
	APIHost   string        `yaml:"api_host"`   // X-RapidAPI-Host header value
	Timeout   time.Duration `yaml:"timeout"`
}

type ESPNConfig struct {
	BaseURL string        `yaml:"base_url"`
	Leagues []string      `yaml:"leagues"` // league slugs, e.g. eng.1, esp.1
	Timeout time.Duration `yaml:"timeout"`
}

type SampleConfig struct {
	Matches int `yaml:"matches"` // number of sample matches to generate
}

type SessionConfig struct {
	ID            string        `yaml:"id"` // session key for persistence (default: "default")
	RedisAddr     string        `yaml:"redis_addr"`
	RedisPassword string        `yaml:"redis_password"`
	RedisDB       int           `yaml:"redis_db"`
	TTL           time.Duration `yaml:"ttl"`
}

type StorageConfig struct {
	PostgresDSN string `yaml:"postgres_dsn"` // empty disables snapshot storage
}

type NotifyConfig struct {
	TelegramBotToken string `yaml:"telegram_bot_token"`
	TelegramChatID   int64  `yaml:"telegram_chat_id"`
}

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}
