package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all process configuration. The provider section is resolved
// once at startup; changing it requires a restart.
type Config struct {
	AppPort      int    `mapstructure:"APP_PORT"`
	DatabasePath string `mapstructure:"DATABASE_PATH"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`

	ChatEnabled  bool   `mapstructure:"CHAT_ENABLED"`
	ChatProvider string `mapstructure:"CHAT_PROVIDER"`
	ChatModel    string `mapstructure:"CHAT_MODEL"`
	MaxTokens    int    `mapstructure:"CHAT_MAX_TOKENS"`
	DefaultAgent string `mapstructure:"DEFAULT_AGENT"`

	// Provider call timeout, enforced at the provider boundary.
	ProviderTimeout time.Duration `mapstructure:"PROVIDER_TIMEOUT"`

	OllamaURL     string `mapstructure:"OLLAMA_URL"`
	OpenAIAPIKey  string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
	GroqAPIKey    string `mapstructure:"GROQ_API_KEY"`
}

// Load reads configuration from the environment, with an optional .env file
// and defaults for local development.
func Load() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("DATABASE_PATH", "/data/lexaid.db")
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("CHAT_ENABLED", true)
	viper.SetDefault("CHAT_PROVIDER", "ollama")
	viper.SetDefault("CHAT_MODEL", "llama3.1:8b")
	viper.SetDefault("CHAT_MAX_TOKENS", 2048)
	viper.SetDefault("DEFAULT_AGENT", "litigant")
	viper.SetDefault("PROVIDER_TIMEOUT", "120s")
	viper.SetDefault("OLLAMA_URL", "http://ollama:11434")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
