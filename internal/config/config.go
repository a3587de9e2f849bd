package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAITimeout time.Duration

	CatalogPath string
	LogLevel    string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads all env vars and builds the config. A .env file in the working
// directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PHONEKART_PORT", "8080"),

		OpenAIAPIKey:  getEnv("PHONEKART_OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("PHONEKART_OPENAI_MODEL", "gpt-4o-mini"),
		OpenAITimeout: getDurationEnv("PHONEKART_OPENAI_TIMEOUT", 30*time.Second),

		CatalogPath: getEnv("PHONEKART_CATALOG_PATH", "data/phones.json"),
		LogLevel:    getEnv("PHONEKART_LOG_LEVEL", "info"),
	}
}

// ProviderConfigured reports whether a usable generation-provider key is set.
// "dummy" is treated as absent so local setups can disable the provider
// without unsetting the variable.
func (c *Config) ProviderConfigured() bool {
	return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != "dummy"
}
