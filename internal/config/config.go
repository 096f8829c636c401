// Package config loads runtime settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/hireassist/internal/logger"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Generation  GenerationConfig  `mapstructure:"generation"`
	Translation TranslationConfig `mapstructure:"translation"`
	Interview   InterviewConfig   `mapstructure:"interview"`
	Logger      logger.Config     `mapstructure:"log"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type GenerationConfig struct {
	Provider     string        `mapstructure:"provider"`
	Token        string        `mapstructure:"token"`
	Model        string        `mapstructure:"model"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
}

type TranslationConfig struct {
	Provider        string        `mapstructure:"provider"`
	MyMemoryEmail   string        `mapstructure:"mymemory_email"`
	MyMemoryBaseURL string        `mapstructure:"mymemory_base_url"`
	Credentials     string        `mapstructure:"credentials"`
	GoogleAPIKey    string        `mapstructure:"google_api_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type InterviewConfig struct {
	ShortCircuitFailures bool          `mapstructure:"short_circuit_failures"`
	Timeout              time.Duration `mapstructure:"timeout"`
}

// MissingCredentialError is fatal: the app must not serve anything without it.
type MissingCredentialError struct {
	EnvVar string
}

func (e *MissingCredentialError) Error() string {
	if e.EnvVar == "HUGGINGFACE_TOKEN" {
		return "❌ Missing Hugging Face API Token. Please set it in the .env file."
	}
	return fmt.Sprintf("❌ Missing %s. Please set it in the .env file.", e.EnvVar)
}

// envBindings maps config keys to the environment variables that feed them.
var envBindings = map[string]string{
	"server.addr":                      "SERVER_ADDR",
	"generation.provider":              "GENERATION_PROVIDER",
	"generation.token":                 "HUGGINGFACE_TOKEN",
	"generation.model":                 "GENERATION_MODEL",
	"generation.base_url":              "GENERATION_BASE_URL",
	"generation.timeout":               "GENERATION_TIMEOUT",
	"generation.gemini_api_key":        "GEMINI_API_KEY",
	"translation.provider":             "TRANSLATION_PROVIDER",
	"translation.mymemory_email":       "MYMEMORY_EMAIL",
	"translation.mymemory_base_url":    "MYMEMORY_BASE_URL",
	"translation.credentials":          "GOOGLE_APPLICATION_CREDENTIALS",
	"translation.google_api_key":       "GOOGLE_TRANSLATE_API_KEY",
	"translation.timeout":              "TRANSLATION_TIMEOUT",
	"interview.short_circuit_failures": "INTERVIEW_SHORT_CIRCUIT_FAILURES",
	"interview.timeout":                "INTERVIEW_TIMEOUT",
	"log.level":                        "LOG_LEVEL",
	"log.format":                       "LOG_FORMAT",
	"log.time_format":                  "LOG_TIME_FORMAT",
	"log.report_caller":                "LOG_REPORT_CALLER",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8501")
	v.SetDefault("generation.provider", "huggingface")
	v.SetDefault("generation.timeout", "60s")
	v.SetDefault("translation.provider", "mymemory")
	v.SetDefault("translation.timeout", "30s")
	v.SetDefault("interview.short_circuit_failures", false)
	v.SetDefault("interview.timeout", "2m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Load reads envFile (a missing file is not an error), applies environment
// overrides on top of v's defaults and flag bindings, and checks that the
// credential for the selected generation provider is present.
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Generation.Provider {
	case "huggingface":
		if c.Generation.Token == "" {
			return &MissingCredentialError{EnvVar: "HUGGINGFACE_TOKEN"}
		}
	case "gemini":
		if c.Generation.GeminiAPIKey == "" {
			return &MissingCredentialError{EnvVar: "GEMINI_API_KEY"}
		}
	default:
		return fmt.Errorf("unknown generation provider %q", c.Generation.Provider)
	}

	switch c.Translation.Provider {
	case "mymemory", "google":
	default:
		return fmt.Errorf("unknown translation provider %q", c.Translation.Provider)
	}
	return nil
}
