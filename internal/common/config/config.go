package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	AI         AIConfig         `mapstructure:"ai"`
	Cache      CacheConfig      `mapstructure:"cache"`
	Classifier ClassifierConfig `mapstructure:"classifier"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// AIConfig holds settings for the text-completion backend.
type AIConfig struct {
	BaseURL     string  `mapstructure:"base_url"`
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	MaxTokens   int     `mapstructure:"max_tokens"`
	Temperature float64 `mapstructure:"temperature"`
	Timeout     int     `mapstructure:"timeout"`     // milliseconds
	MaxRetries  int     `mapstructure:"max_retries"` // per completion call
}

type CacheConfig struct {
	Backend string      `mapstructure:"backend"` // memory | redis
	TTL     int         `mapstructure:"ttl"`     // seconds, 0 = no expiry
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ClassifierConfig struct {
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold"`
	ScalingConstant     float64 `mapstructure:"scaling_constant"`
}

type GeneratorConfig struct {
	TemplateVersion string `mapstructure:"template_version"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "medsite-generator"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "default"
	}
	if cfg.AI.MaxTokens <= 0 {
		cfg.AI.MaxTokens = 2048
	}
	if cfg.AI.Temperature <= 0 {
		cfg.AI.Temperature = 0.7
	}
	if cfg.AI.Timeout <= 0 {
		cfg.AI.Timeout = 30000
	}
	if cfg.AI.MaxRetries <= 0 {
		cfg.AI.MaxRetries = 3
	}
	if cfg.Cache.Backend == "" {
		cfg.Cache.Backend = "memory"
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 3600
	}
	if cfg.Cache.Redis.Address == "" {
		cfg.Cache.Redis.Address = "localhost:6379"
	}
	if cfg.Classifier.ConfidenceThreshold <= 0 {
		cfg.Classifier.ConfidenceThreshold = 0.7
	}
	if cfg.Classifier.ScalingConstant <= 0 {
		cfg.Classifier.ScalingConstant = 4.0
	}
	if cfg.Generator.TemplateVersion == "" {
		cfg.Generator.TemplateVersion = "v1"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Metrics.Address == "" {
		cfg.Metrics.Address = ":9102"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.AI.BaseURL == "" {
		return fmt.Errorf("ai.base_url is required")
	}
	if cfg.Cache.Backend != "memory" && cfg.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be memory or redis, got %q", cfg.Cache.Backend)
	}
	if cfg.Classifier.ConfidenceThreshold > 1.0 {
		return fmt.Errorf("classifier.confidence_threshold must be in (0,1]")
	}
	if cfg.AI.Temperature > 2.0 {
		return fmt.Errorf("ai.temperature must be in (0,2]")
	}
	return nil
}
