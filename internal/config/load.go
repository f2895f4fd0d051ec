package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// configKeys lists every key viper must bind so AutomaticEnv picks them up
// during Unmarshal.
var configKeys = []string{
	"server.port",
	"server.log_level",
	"llm.endpoint",
	"llm.api_key",
	"llm.api_version",
	"llm.deployment",
	"llm.temperature",
}

// Load reads configuration from environment variables with the STUDYDECK_
// prefix (dots become underscores, e.g. STUDYDECK_LLM_API_KEY). A .env file
// in the working directory is loaded first when present, which keeps local
// development close to production. Returns a validated Config or an error.
func Load() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.api_version", "2024-10-21")
	v.SetDefault("llm.temperature", 0.2)

	v.SetEnvPrefix("STUDYDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range configKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
