package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uhabits.toml")
	cs := &configService{filePath: path}

	cfg, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Version)
	require.NotEmpty(t, cfg.DatabasePath)
	require.True(t, cfg.UISettings.ShowScores)

	// Defaults should have been persisted
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uhabits.toml")
	cs := &configService{filePath: path}

	cfg := &Config{
		Version:      1,
		DatabasePath: "/tmp/test.db",
		UISettings:   UISettings{ShowScores: false, ShowArchived: true},
	}
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uhabits.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [not toml"), 0644))

	cs := &configService{filePath: path}
	_, err := cs.Load()
	require.Error(t, err)
}

func TestLoadFillsMissingDatabasePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uhabits.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	cs := &configService{filePath: path}
	cfg, err := cs.Load()
	require.NoError(t, err)
	require.NotEmpty(t, cfg.DatabasePath)
}
