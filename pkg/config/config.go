package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultModel = "claude-sonnet-4-5-20250929"

// providerDefaults holds, per provider name, the model used when none is
// configured and the vendor environment variable read for the API key.
var providerDefaults = map[string]struct {
	Model     string
	APIKeyEnv []string
}{
	"anthropic": {Model: DefaultModel, APIKeyEnv: []string{"ANTHROPIC_API_KEY"}},
	"openai":    {Model: "gpt-4o-mini", APIKeyEnv: []string{"OPENAI_API_KEY"}},
	"gemini":    {Model: "gemini-2.0-flash", APIKeyEnv: []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}},
	"google":    {Model: "gemini-2.0-flash", APIKeyEnv: []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"}},
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Reasoning ReasoningConfig `mapstructure:"reasoning"`
	Security  SecurityConfig  `mapstructure:"security"`
}

type ServerConfig struct {
	Port        int `mapstructure:"port"`
	MetricsPort int `mapstructure:"metrics_port"`
	BodyLimitMB int `mapstructure:"body_limit_mb"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type ReasoningConfig struct {
	Provider string        `mapstructure:"provider"`
	APIKey   string        `mapstructure:"api_key"`
	Model    string        `mapstructure:"model"`
	Breaker  BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxFailures uint32        `mapstructure:"max_failures"`
}

type SecurityConfig struct {
	HardBlock  bool             `mapstructure:"hard_block"`
	MaxChars   int              `mapstructure:"max_chars"`
	Attachment AttachmentConfig `mapstructure:"attachment"`
}

type AttachmentConfig struct {
	MaxPages int `mapstructure:"max_pages"`
	MaxChars int `mapstructure:"max_chars"`
}

var globalConfig Config

// Load reads config.yaml from configPath, ./config or the working directory,
// then applies environment overrides. A missing file is not an error.
func Load(configPath string) error {
	cfg, err := LoadFrom(viper.New(), configPath)
	if err != nil {
		return err
	}
	globalConfig = *cfg
	return nil
}

func LoadFrom(v *viper.Viper, configPath string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath("./config")
	v.AddConfigPath(".")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaultValues(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file config.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyProviderDefaults(v, &cfg.Reasoning)
	return &cfg, nil
}

// applyProviderDefaults fills the model and API key left empty by the file and
// the REASONING_* variables from the selected provider's own settings.
func applyProviderDefaults(v *viper.Viper, rc *ReasoningConfig) {
	rc.Provider = strings.ToLower(strings.TrimSpace(rc.Provider))
	defaults, ok := providerDefaults[rc.Provider]
	if !ok {
		return
	}
	if rc.Model == "" {
		if rc.Provider == "anthropic" {
			rc.Model = v.GetString("claude_model")
		}
		if rc.Model == "" {
			rc.Model = defaults.Model
		}
	}
	if rc.APIKey == "" {
		for _, env := range defaults.APIKeyEnv {
			if key := v.GetString(strings.ToLower(env)); key != "" {
				rc.APIKey = key
				break
			}
		}
	}
}

func setDefaultValues(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.metrics_port", 9090)
	v.SetDefault("server.body_limit_mb", 8)
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("reasoning.provider", "anthropic")
	v.SetDefault("reasoning.breaker.enabled", true)
	v.SetDefault("reasoning.breaker.timeout", 30*time.Second)
	v.SetDefault("reasoning.breaker.max_failures", 5)
	v.SetDefault("security.hard_block", false)
	v.SetDefault("security.max_chars", 8000)
	v.SetDefault("security.attachment.max_pages", 2)
	v.SetDefault("security.attachment.max_chars", 3000)
}

func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"reasoning.api_key":   {"REASONING_API_KEY"},
		"reasoning.model":     {"REASONING_MODEL"},
		"reasoning.provider":  {"REASONING_PROVIDER"},
		"security.hard_block": {"SECURITY_HARD_BLOCK", "HARD_BLOCK"},
		"claude_model":        {"CLAUDE_MODEL"},
		"anthropic_api_key":   {"ANTHROPIC_API_KEY"},
		"openai_api_key":      {"OPENAI_API_KEY"},
		"gemini_api_key":      {"GEMINI_API_KEY"},
		"google_api_key":      {"GOOGLE_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func GetConfig() *Config {
	return &globalConfig
}
