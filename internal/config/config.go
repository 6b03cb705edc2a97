package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all run settings, populated from environment variables.
type Config struct {
	DataPath        string `validate:"required"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFormat       string `validate:"oneof=json text"`
	OutputFormat    string `validate:"oneof=text json yaml"`
	MetricsTextfile string `validate:"omitempty,endswith=.prom"`
}

var validate = validator.New()

// Load reads configuration from environment variables (and an optional .env
// file in the working directory), applying defaults where unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	cfg := &Config{
		DataPath:        sharedcfg.EnvOrDefault("SEALEVEL_DATA_PATH", "Datasets/global_mean_sea_level.csv"),
		LogLevel:        strings.ToLower(sharedcfg.EnvOrDefault("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(sharedcfg.EnvOrDefault("LOG_FORMAT", "json")),
		OutputFormat:    strings.ToLower(sharedcfg.EnvOrDefault("OUTPUT_FORMAT", "text")),
		MetricsTextfile: sharedcfg.EnvOrDefault("METRICS_TEXTFILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values, naming the environment variable at fault.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("invalid %s %q", envNames[fe.Field()], fmt.Sprint(fe.Value())))
	}
	return errors.New(strings.Join(msgs, "; "))
}

var envNames = map[string]string{
	"DataPath":        "SEALEVEL_DATA_PATH",
	"LogLevel":        "LOG_LEVEL",
	"LogFormat":       "LOG_FORMAT",
	"OutputFormat":    "OUTPUT_FORMAT",
	"MetricsTextfile": "METRICS_TEXTFILE",
}
