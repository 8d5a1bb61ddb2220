package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer cw.Close()
	assert.Equal(t, "info", cw.Current().Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"error\"\n"), 0o644))

	// a write may be seen half done, wait for the final content
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-cw.Configs():
			if cfg.Log.Level != "error" {
				continue
			}
			assert.Equal(t, "error", cw.Current().Log.Level)
			return
		case <-timeout:
			t.Fatal("configuration was not reloaded")
		}
	}
}

func TestConfigWatcherKeepsConfigOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"info\"\n"), 0o644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	defer cw.Close()

	require.NoError(t, os.WriteFile(path, []byte("[log"), 0o644))

	select {
	case err := <-cw.Errors():
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("reload error was not reported")
	}
	assert.Equal(t, "info", cw.Current().Log.Level)
}

func TestConfigWatcherClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	cw, err := NewConfigWatcher(path)
	require.NoError(t, err)
	require.NoError(t, cw.Close())
	assert.Error(t, cw.Close())

	// the loop closes the channels on exit
	select {
	case _, ok := <-cw.Configs():
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("configs channel was not closed")
	}
}

func TestNewConfigWatcherMissingFile(t *testing.T) {
	_, err := NewConfigWatcher(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
