package oneaway

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oneaway.yaml")
	require.Nil(t, GenerateSample(path))
	cfg, err := NewConfig(path)
	require.Nil(t, err)
	require.Equal(t, DefaultConfig.Preset, cfg.Preset)
	require.Equal(t, DefaultConfig.Dictionary, cfg.Dictionary)
	require.Equal(t, DefaultConfig.Format, cfg.Format)
	require.Empty(t, cfg.Operators)
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}
