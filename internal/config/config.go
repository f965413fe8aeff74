package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all service configuration, sourced from environment variables
// (loaded from .env for local runs).
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Port        int    `envconfig:"PORT" default:"8001"`

	// Classifier artifacts
	ModelPath    string `envconfig:"MODEL_PATH" default:"models/plant_disease_model.onnx"`
	MetadataPath string `envconfig:"MODEL_METADATA_PATH" default:"models/model_metadata.json"`

	// Remote AI. An empty API key disables every remote tier; the service
	// then runs in fallback mode instead of erroring.
	GeminiAPIKey     string        `envconfig:"GEMINI_API_KEY"`
	GeminiModel      string        `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
	ChatTimeout      time.Duration `envconfig:"CHAT_TIMEOUT" default:"10s"`
	TranslateTimeout time.Duration `envconfig:"TRANSLATE_TIMEOUT" default:"10s"`

	// Optional translation cache
	RedisURL       string        `envconfig:"REDIS_URL"`
	TranslationTTL time.Duration `envconfig:"TRANSLATION_TTL" default:"24h"`
}

// Load reads .env if present and processes environment variables into Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RemoteAIEnabled reports whether a Gemini credential was provided.
func (c Config) RemoteAIEnabled() bool {
	return c.GeminiAPIKey != ""
}
