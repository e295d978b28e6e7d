package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// WebhookConfig holds the per-kind document workflow endpoints. They are
// never committed; every value comes from the environment.
type WebhookConfig struct {
	Music string
	Booth string
	DJ    string
}

type SuggestConfig struct {
	APIKey   string
	Endpoint string
}

type Config struct {
	Addr         string
	Environment  string
	DatabasePath string
	PricingFile  string

	HistoryMax    int
	SubmitTimeout time.Duration
	DraftDebounce time.Duration

	Webhooks WebhookConfig
	Suggest  SuggestConfig
}

const defaultSuggestEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Addr:          envOr("CONTRATIA_ADDR", ":8080"),
		Environment:   envOr("CONTRATIA_ENV", "development"),
		DatabasePath:  envOr("CONTRATIA_DB_PATH", "contratia.db"),
		PricingFile:   os.Getenv("CONTRATIA_PRICING_FILE"),
		HistoryMax:    envIntOr("CONTRATIA_HISTORY_MAX", 50),
		SubmitTimeout: envDurationOr("CONTRATIA_SUBMIT_TIMEOUT", 30*time.Second),
		DraftDebounce: envDurationOr("CONTRATIA_DRAFT_DEBOUNCE", 500*time.Millisecond),
		Webhooks: WebhookConfig{
			Music: os.Getenv("CONTRATIA_WEBHOOK_MUSIC"),
			Booth: os.Getenv("CONTRATIA_WEBHOOK_BOOTH"),
			DJ:    os.Getenv("CONTRATIA_WEBHOOK_DJ"),
		},
		Suggest: SuggestConfig{
			APIKey:   os.Getenv("CONTRATIA_GEMINI_API_KEY"),
			Endpoint: envOr("CONTRATIA_GEMINI_ENDPOINT", defaultSuggestEndpoint),
		},
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
