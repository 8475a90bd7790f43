package config

import (
	"time"

	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
)

// Config is the tokensmith application configuration (tokensmith.yaml).
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Export   ExportConfig   `yaml:"export"`
	Strategy StrategyConfig `yaml:"strategy"`
	Server   ServerConfig   `yaml:"server"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Watch    WatchConfig    `yaml:"watch"`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,log_level"`
	Human bool   `yaml:"human"`
}

// ExportConfig holds export defaults.
type ExportConfig struct {
	DefaultFormat string `yaml:"default_format" validate:"omitempty,export_format"`
	OutputDir     string `yaml:"output_dir"`
}

// StrategyConfig is the default business context. Values are checked
// strictly so typos surface at load time rather than as a silent fallback.
type StrategyConfig struct {
	BusinessType   string `yaml:"business_type" validate:"omitempty,oneof=saas ecommerce service portfolio"`
	BrandVibe      string `yaml:"brand_vibe" validate:"omitempty,oneof=innovative trustworthy luxury friendly"`
	ConversionGoal string `yaml:"conversion_goal" validate:"omitempty,oneof=lead purchase awareness"`
}

// Context converts the configured defaults into a strategy context.
func (s StrategyConfig) Context() strategy.Context {
	return strategy.Context{
		BusinessType:   strategy.BusinessType(s.BusinessType),
		BrandVibe:      strategy.BrandVibe(s.BrandVibe),
		ConversionGoal: strategy.ConversionGoal(s.ConversionGoal),
	}
}

// ServerConfig configures `tokensmith serve`.
type ServerConfig struct {
	Addr         string   `yaml:"addr" validate:"omitempty,hostname_port"`
	AllowOrigins []string `yaml:"allow_origins" validate:"omitempty,dive,url"`
}

// SuggestConfig configures the generative suggestion client.
type SuggestConfig struct {
	Model     string        `yaml:"model" validate:"omitempty,max=128"`
	MaxTokens int           `yaml:"max_tokens" validate:"omitempty,min=1,max=64000"`
	Timeout   time.Duration `yaml:"timeout" validate:"omitempty,min=1s"`
	APIKeyEnv string        `yaml:"api_key_env" validate:"omitempty,env_name"`
	BaseURL   string        `yaml:"base_url" validate:"omitempty,url"`
}

// WatchConfig configures `tokensmith watch`.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" validate:"omitempty,min=10ms,max=1m"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Export: ExportConfig{
			DefaultFormat: "css",
			OutputDir:     ".",
		},
		Strategy: StrategyConfig{
			BusinessType:   "saas",
			BrandVibe:      "innovative",
			ConversionGoal: "lead",
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		Suggest: SuggestConfig{
			Model:     "claude-sonnet-4-5-20250929",
			MaxTokens: 2048,
			Timeout:   60 * time.Second,
			APIKeyEnv: "ANTHROPIC_API_KEY",
		},
		Watch: WatchConfig{Debounce: 100 * time.Millisecond},
	}
}
