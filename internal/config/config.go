package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Env    string       `yaml:"env"`
	HTTP   HTTPConfig   `yaml:"http"`
	Log    LogConfig    `yaml:"log"`
	Entry  EntryConfig  `yaml:"entry"`
	Search SearchConfig `yaml:"search"`
}

type HTTPConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// EntryConfig describes the upstream platform boundary: where to reach it,
// which service account signs in, and how long a session is reused.
type EntryConfig struct {
	BaseURL        string        `yaml:"base_url"`
	Username       string        `yaml:"username"`
	Password       string        `yaml:"password"`
	SessionTTL     time.Duration `yaml:"session_ttl"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type SearchConfig struct {
	DefaultDisplay int `yaml:"default_display"`
	MaxDisplay     int `yaml:"max_display"`
}

func Default() Config {
	return Config{
		Env: "dev",
		HTTP: HTTPConfig{
			Addr:         ":4000",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
		Log: LogConfig{Level: "debug"},
		Entry: EntryConfig{
			BaseURL:        "https://playentry.org",
			SessionTTL:     3 * time.Hour,
			RequestTimeout: 15 * time.Second,
		},
		Search: SearchConfig{
			DefaultDisplay: 16,
			MaxDisplay:     50,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromYAML(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFromYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("unmarshal config yaml: %w", err)
	}

	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}

	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if err := overrideDuration("HTTP_READ_TIMEOUT", &cfg.HTTP.ReadTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_WRITE_TIMEOUT", &cfg.HTTP.WriteTimeout); err != nil {
		return err
	}
	if err := overrideDuration("HTTP_IDLE_TIMEOUT", &cfg.HTTP.IdleTimeout); err != nil {
		return err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	if v := os.Getenv("ENTRY_BASE_URL"); v != "" {
		cfg.Entry.BaseURL = v
	}
	if v := os.Getenv("ENTRY_USERNAME"); v != "" {
		cfg.Entry.Username = v
	}
	if v := os.Getenv("ENTRY_PASSWORD"); v != "" {
		cfg.Entry.Password = v
	}
	if err := overrideDuration("ENTRY_SESSION_TTL", &cfg.Entry.SessionTTL); err != nil {
		return err
	}
	if err := overrideDuration("ENTRY_REQUEST_TIMEOUT", &cfg.Entry.RequestTimeout); err != nil {
		return err
	}

	if err := overrideInt("SEARCH_DEFAULT_DISPLAY", &cfg.Search.DefaultDisplay); err != nil {
		return err
	}
	if err := overrideInt("SEARCH_MAX_DISPLAY", &cfg.Search.MaxDisplay); err != nil {
		return err
	}

	return nil
}

func overrideDuration(key string, target *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("parse %s duration: %w", key, err)
	}
	*target = d
	return nil
}

func overrideInt(key string, target *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parse %s int: %w", key, err)
	}
	*target = n
	return nil
}
