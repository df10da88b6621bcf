package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadReadsAllSections(t *testing.T) {
	path := writeConfig(t, `
# smart-menu test config
scanner:
  fps: 24

provider:
  restaurant_delay_ms: 100
  table_delay_ms: 50

waiter:
  tick_ms: 500
  ceiling_ticks: 10

kitchen:
  confirm_ms: 1
  prepare_ms: 2
  ready_ms: 3
  deliver_ms: 4
  poll_ms: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 24, cfg.Scanner.FPS)
	require.Equal(t, 100, cfg.Provider.RestaurantDelayMS)
	require.Equal(t, 50, cfg.Provider.TableDelayMS)
	require.Equal(t, 500, cfg.Waiter.TickMS)
	require.Equal(t, 10, cfg.Waiter.CeilingTicks)
	require.Equal(t, 1, cfg.Kitchen.ConfirmMS)
	require.Equal(t, 2, cfg.Kitchen.PrepareMS)
	require.Equal(t, 3, cfg.Kitchen.ReadyMS)
	require.Equal(t, 4, cfg.Kitchen.DeliverMS)
	require.Equal(t, 5, cfg.Kitchen.PollMS)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `
scanner:
  fps: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	def := Default()
	require.Equal(t, 30, cfg.Scanner.FPS)
	require.Equal(t, def.Provider, cfg.Provider)
	require.Equal(t, def.Waiter, cfg.Waiter)
	require.Equal(t, def.Kitchen, cfg.Kitchen)
}

func TestLoadSkipsUnknownSectionsAndBadValues(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost

scanner:
  fps: "not a number"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Default().Scanner.FPS, cfg.Scanner.FPS)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadUnreadableFileIsAnError(t *testing.T) {
	dir := t.TempDir() // a directory, not a file
	_, err := Load(dir)
	require.Error(t, err)
}
