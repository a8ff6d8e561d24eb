package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tend.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yml"), "/tmp/data")
		require.NoError(t, err)

		assert.Equal(t, 3, cfg.DueSoonDays)
		assert.Equal(t, 3, cfg.CalendarMaxPerDay)
		assert.Equal(t, ViewGrid, cfg.DefaultView)
		assert.Equal(t, "/tmp/data", cfg.DataDir)
	})

	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("", "/tmp/data")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().DueSoonDays, cfg.DueSoonDays)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "due_soon_days: 7\ndefault_view: calendar\n")

		cfg, err := Load(path, "/tmp/data")
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.DueSoonDays)
		assert.Equal(t, ViewCalendar, cfg.DefaultView)
		assert.Equal(t, 3, cfg.CalendarMaxPerDay, "unset keys keep defaults")
	})

	t.Run("invalid yaml errors", func(t *testing.T) {
		path := writeConfig(t, "due_soon_days: [broken")
		_, err := Load(path, "/tmp/data")
		assert.Error(t, err)
	})

	t.Run("unknown view rejected", func(t *testing.T) {
		path := writeConfig(t, "default_view: kanban\n")
		_, err := Load(path, "/tmp/data")
		assert.Error(t, err)
	})

	t.Run("unknown sort rejected", func(t *testing.T) {
		path := writeConfig(t, "default_sort: priority\n")
		_, err := Load(path, "/tmp/data")
		assert.Error(t, err)
	})

	t.Run("empty data dir rejected", func(t *testing.T) {
		_, err := Load("", "")
		assert.Error(t, err)
	})
}
