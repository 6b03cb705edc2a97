package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // keep any developer .env out of the test

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Datasets/global_mean_sea_level.csv", cfg.DataPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Empty(t, cfg.MetricsTextfile)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SEALEVEL_DATA_PATH", "/data/gmsl.csv")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("OUTPUT_FORMAT", "yaml")
	t.Setenv("METRICS_TEXTFILE", "/var/lib/node_exporter/sealevel.prom")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/gmsl.csv", cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Equal(t, "/var/lib/node_exporter/sealevel.prom", cfg.MetricsTextfile)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidOutputFormat(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OUTPUT_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OUTPUT_FORMAT")
}

func TestLoad_InvalidMetricsTextfile(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("METRICS_TEXTFILE", "/tmp/metrics.txt")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "METRICS_TEXTFILE")
}

func TestValidate_ReportsEveryField(t *testing.T) {
	cfg := &Config{LogLevel: "loud", LogFormat: "xml", OutputFormat: "text"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SEALEVEL_DATA_PATH")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}
