package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath     string
	OutputDir  string
	RecordRuns bool
	RunsLimit  int

	Currency   string
	Currencies []string

	LogLevel  string
	LogFormat string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:     getEnv("CATALOGDIFF_DB_PATH", filepath.Join(cwd, "data", "runs.db")),
		OutputDir:  getEnv("CATALOGDIFF_OUTPUT_DIR", filepath.Join(cwd, "out")),
		RecordRuns: getEnvBool("CATALOGDIFF_RECORD_RUNS", true),
		RunsLimit:  getEnvInt("CATALOGDIFF_RUNS_LIMIT", 20),

		Currency:   strings.ToUpper(strings.TrimSpace(getEnv("CATALOGDIFF_CURRENCY", "USD"))),
		Currencies: getEnvList("CATALOGDIFF_CURRENCIES", []string{"USD", "GBP"}),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}

	if err := cfg.ValidateCurrency(cfg.Currency); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateCurrency checks value against the configured currency choices.
// The pipeline itself writes whatever it is given; this guards CLI input.
func (c Config) ValidateCurrency(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("currency is required")
	}
	for _, allowed := range c.Currencies {
		if strings.EqualFold(allowed, value) {
			return nil
		}
	}
	return fmt.Errorf("unsupported currency %q (allowed: %s)", value, strings.Join(c.Currencies, ", "))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
