package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

const (
	API_KEY_VAR          = "HUGGINGFACE_API_KEY"
	ENDPOINT_VAR         = "HF_SENTIMENT_ENDPOINT"
	REQUEST_TIMEOUT_VAR  = "HF_REQUEST_TIMEOUT"
	DEFAULT_SENTIMENT_EP = "https://api-inference.huggingface.co/models/cardiffnlp/twitter-roberta-base-sentiment"
	DEFAULT_PORT         = "8501"
	DEFAULT_APP_ENV      = "dev"
)

var ErrMissingCredential = errors.New("hugging face API key not found: set " + API_KEY_VAR + " in the environment or .env file")

// Config is built once at startup and handed to the components that need it.
type Config struct {
	APIKey         string
	Endpoint       string
	Env            string
	Port           string
	RequestTimeout time.Duration // zero leaves the transport default in place
}

func Load() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv(API_KEY_VAR))
	if apiKey == "" {
		return Config{}, ErrMissingCredential
	}

	var timeout time.Duration
	if raw := strings.TrimSpace(os.Getenv(REQUEST_TIMEOUT_VAR)); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", REQUEST_TIMEOUT_VAR, raw, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must not be negative", REQUEST_TIMEOUT_VAR, raw)
		}
		timeout = d
	}

	return Config{
		APIKey:         apiKey,
		Endpoint:       getEnv(ENDPOINT_VAR, DEFAULT_SENTIMENT_EP),
		Env:            getEnv("APP_ENV", DEFAULT_APP_ENV),
		Port:           getEnv("PORT", DEFAULT_PORT),
		RequestTimeout: timeout,
	}, nil
}

// MustLoad stops the process when the configuration is unusable. Nothing is
// served before it returns.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		slog.Error("[Config] Failed to load configuration",
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	return cfg
}

func getEnv(key, def string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return def
}
