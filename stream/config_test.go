package stream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeFile(t, "config.yaml", `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: tree/stream
stream:
  pixels: 120
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tcp://broker:1883", cfg.Mqtt.URL)
	assert.Equal(t, "tree/stream", cfg.Mqtt.Topics.Stream)
	assert.Equal(t, 120, cfg.Stream.Pixels)
	assert.Equal(t, 30.0, cfg.Stream.FrameRate)
	assert.Equal(t, "set.yaml", cfg.Stream.Animation)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeFile(t, "config.yaml", `
stream:
  pixels: 0
  frameRate: -1
mqtt:
  qos: 3
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "stream.pixels")
	assert.ErrorContains(t, err, "stream.frameRate")
	assert.ErrorContains(t, err, "mqtt.qos")
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "read config")
}
