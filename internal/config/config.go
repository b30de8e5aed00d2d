// Package config loads service configuration from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Default configuration values.
const (
	defaultServiceName      = "offersentry"
	defaultServiceVersion   = "1.0.0"
	defaultServicePort      = 8085
	defaultLogLevel         = "info"
	defaultKnowledgeDir     = "data/knowledge"
	defaultDatabasePath     = "data/offersentry.db"
	defaultSearchTimeoutSec = 10
	defaultSearchMaxResults = 5
	defaultHistoryLimit     = 50
)

// Config holds all configuration for the service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Logging   LoggingConfig   `yaml:"logging"`
	Knowledge KnowledgeConfig `yaml:"knowledge"`
	Database  DatabaseConfig  `yaml:"database"`
	Research  ResearchConfig  `yaml:"research"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `yaml:"port"`
	Debug   bool   `yaml:"debug"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// KnowledgeConfig locates the pattern documents on disk.
type KnowledgeConfig struct {
	Dir string `yaml:"dir"`
}

// DatabaseConfig holds the analysis history database location.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ResearchConfig controls the external search collaborator.
type ResearchConfig struct {
	SearchEnabled bool          `yaml:"search_enabled"`
	SearchTimeout time.Duration `yaml:"search_timeout"`
	MaxResults    int           `yaml:"max_results"`
	HistoryLimit  int           `yaml:"history_limit"`
}

// Load reads configuration from the given path. A missing file is not an
// error; defaults and environment overrides still apply.
func Load(path string) (*Config, error) {
	// Local .env files are optional.
	_ = godotenv.Load()

	cfg := &Config{}
	data, err := os.ReadFile(path)
	if err == nil {
		if unmarshalErr := yaml.Unmarshal(data, cfg); unmarshalErr != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, unmarshalErr)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("OFFERSENTRY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Service.Port = port
		}
	}
	if v := os.Getenv("APP_DEBUG"); v != "" {
		cfg.Service.Debug = v == "true"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("OFFERSENTRY_KNOWLEDGE_DIR"); v != "" {
		cfg.Knowledge.Dir = v
	}
	if v := os.Getenv("OFFERSENTRY_DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("OFFERSENTRY_SEARCH_ENABLED"); v != "" {
		cfg.Research.SearchEnabled = v == "true"
	}
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Knowledge.Dir == "" {
		cfg.Knowledge.Dir = defaultKnowledgeDir
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDatabasePath
	}
	if cfg.Research.SearchTimeout == 0 {
		cfg.Research.SearchTimeout = defaultSearchTimeoutSec * time.Second
	}
	if cfg.Research.MaxResults == 0 {
		cfg.Research.MaxResults = defaultSearchMaxResults
	}
	if cfg.Research.HistoryLimit == 0 {
		cfg.Research.HistoryLimit = defaultHistoryLimit
	}
}
