package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "claude", cfg.AgentBin)
	assert.Equal(t, 120*time.Second, cfg.DailyTimeout())
	assert.Equal(t, 180*time.Second, cfg.WeeklyTimeout())
}

func TestLoadFileAndEnvLayering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "port = \"9000\"\ndb_name = \"standup_test\"\nagent_bin = \"/usr/local/bin/claude\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("STANDUP_CONFIG", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	// Environment wins over the file, the file wins over defaults
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, "standup_test", cfg.DBName)
	assert.Equal(t, "/usr/local/bin/claude", cfg.AgentBin)
	assert.Equal(t, "localhost", cfg.DBHost)
}

func TestDSN(t *testing.T) {
	cfg := defaults()
	cfg.DBHost = "db"
	cfg.DBName = "standup"

	assert.Equal(t,
		"host=db user=postgres password=password dbname=standup port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = ["), 0o600))

	t.Setenv("STANDUP_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}
