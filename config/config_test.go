package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	c, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "sqlite3", c.Database.Driver)
	assert.Equal(t, "website", c.Store.Source)
	assert.Equal(t, 1, c.Inventory.Workers)
	assert.Equal(t, 10*time.Second, c.Inventory.Timeout)
	assert.Equal(t, c, GetConfig())
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storefront.yaml")
	body := "server:\n  addr: \":9090\"\nstore:\n  source: shop\ninventory:\n  workers: 0\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	t.Setenv("STOREFRONT_DATABASE_DRIVER", "pgx")

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, "shop", c.Store.Source)
	assert.Equal(t, "pgx", c.Database.Driver)
	assert.Equal(t, 1, c.Inventory.Workers)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
