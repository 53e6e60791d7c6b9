package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig_AnalysisDefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./data", cfg.FileStorage.RootDir)

	// Analysis section omitted entirely: defaults must fill in
	assert.Equal(t, DefaultAnalysisConfig(), cfg.Analysis)
}

func TestLoadConfig_AnalysisOverrides(t *testing.T) {
	path := writeTempConfig(t, `server:
  port: 8080
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: info
file_storage:
  root_dir: ./data
analysis:
  response_time_thresholds:
    medium: 250
    high: 750
    critical: 1500
  anomaly:
    error_cluster_threshold: 5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Analysis.ResponseTimeThresholds.Medium)
	assert.Equal(t, 750.0, cfg.Analysis.ResponseTimeThresholds.High)
	assert.Equal(t, 1500.0, cfg.Analysis.ResponseTimeThresholds.Critical)
	assert.Equal(t, 5, cfg.Analysis.Anomaly.ErrorClusterThreshold)

	// Untouched fields keep their defaults
	def := DefaultAnalysisConfig()
	assert.Equal(t, def.ErrorRateThresholds, cfg.Analysis.ErrorRateThresholds)
	assert.Equal(t, def.Cost, cfg.Analysis.Cost)
	assert.Equal(t, def.Caching, cfg.Analysis.Caching)
}

func TestLoadConfig_MissingRequiredFields(t *testing.T) {
	path := writeTempConfig(t, `server:
  read_header_timeout: 5
  read_timeout: 10
  write_timeout: 10
  idle_timeout: 60
log:
  level: debug
file_storage:
  root_dir: ./data
`)

	cfg, err := LoadConfig(path)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
	assert.Contains(t, err.Error(), "server.port")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestDefaultAnalysisConfig_Values(t *testing.T) {
	def := DefaultAnalysisConfig()

	assert.Equal(t, ThresholdTriple{Medium: 500, High: 1000, Critical: 2000}, def.ResponseTimeThresholds)
	assert.Equal(t, ThresholdTriple{Medium: 5, High: 10, Critical: 15}, def.ErrorRateThresholds)
	assert.Equal(t, 0.0001, def.Cost.PerRequestUSD)
	assert.Equal(t, 0.000002, def.Cost.PerMillisecondUSD)
	assert.Equal(t, 1024.0, def.Cost.MemoryTiers.SmallMaxBytes)
	assert.Equal(t, 20, def.Anomaly.MaxAnomalies)
	assert.Equal(t, 5, def.Anomaly.ErrorClusterWindowMinutes)
	assert.Equal(t, 100, def.Caching.MinRequestFrequency)
	assert.Equal(t, 15, def.Caching.DefaultTTLMinutes)
}
