package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration resolved from the environment
type Config struct {
	DataFile string
	LogMode  string
	Report   ReportConfig
}

// ReportConfig configures the external narrative-report service. The
// service is optional; an empty API key disables report generation and
// nothing else.
type ReportConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Load reads configuration from the environment, after loading a local
// .env file if one exists.
func Load() *Config {
	// Missing .env is fine; plain env vars still apply.
	_ = godotenv.Load()

	return &Config{
		DataFile: getEnv("MIXPLAN_DATA_FILE", "mixplan.yaml"),
		LogMode:  getEnv("MIXPLAN_LOG_MODE", "dev"),
		Report: ReportConfig{
			APIKey:  getEnv("LLM_API_KEY", ""),
			BaseURL: getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			Model:   getEnv("LLM_MODEL", "gpt-4o-mini"),
			Timeout: 60 * time.Second,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
