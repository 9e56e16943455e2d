package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join("data", "incoming"), cfg.GetIncomingDir())
	require.Equal(t, filepath.Join("data", "processed"), cfg.GetOutputDir())
	require.Equal(t, 24, cfg.GetHours())
	require.Equal(t, 5, cfg.GetIntervalMinutes())
	require.Equal(t, 0.02, cfg.GetAnomalyRate())
	require.Equal(t, "solarproc", cfg.GetTopicPrefix())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		OutputDir: "/var/lib/solarproc/out",
		Generator: GeneratorConfig{Hours: 6, IntervalMinutes: 10, AnomalyRate: 0.05},
		MQTT:      MQTTConfig{Enabled: true, Broker: "broker.local:1883", TopicPrefix: "plant-7"},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/var/lib/solarproc/out", out.GetOutputDir())
	require.Equal(t, 6, out.GetHours())
	require.Equal(t, 10, out.GetIntervalMinutes())
	require.Equal(t, 0.05, out.GetAnomalyRate())
	require.True(t, out.MQTT.Enabled)
	require.Equal(t, "plant-7", out.GetTopicPrefix())
}
