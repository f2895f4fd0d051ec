package config

// Config holds all application configuration. It is assembled once at
// startup and treated as immutable afterwards.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the settings for the chat-completion service.
// Endpoint, key, API version and deployment name follow the Azure OpenAI
// resource layout.
type LLMConfig struct {
	Endpoint    string  `mapstructure:"endpoint"    validate:"required,url"`
	APIKey      string  `mapstructure:"api_key"     validate:"required"`
	APIVersion  string  `mapstructure:"api_version" validate:"required"`
	Deployment  string  `mapstructure:"deployment"  validate:"required"`
	Temperature float32 `mapstructure:"temperature" validate:"gte=0,lte=2"`
}
