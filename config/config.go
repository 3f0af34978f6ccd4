package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Logger    LoggerConfig    `mapstructure:"logger"`
	Cart      CartConfig      `mapstructure:"cart"`
	Store     StoreConfig     `mapstructure:"store"`
	Inventory InventoryConfig `mapstructure:"inventory"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	SessionSecret   string        `mapstructure:"session_secret"`
	SecureCookie    bool          `mapstructure:"secure_cookie"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig selects the store backend. Driver is "sqlite3" for the
// embedded file or "pgx" for a hosted Postgres.
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	ApplySchema     bool          `mapstructure:"apply_schema"`
	SeedDir         string        `mapstructure:"seed_dir"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type LoggerConfig struct {
	Mode       string `mapstructure:"mode"`
	FileEnable bool   `mapstructure:"file_enable"`
	Filename   string `mapstructure:"filename"`
}

type CartConfig struct {
	DataFile   string `mapstructure:"data_file"`
	CookieName string `mapstructure:"cookie_name"`
}

// StoreConfig holds the provenance tag written on and filtered from every
// storefront record.
type StoreConfig struct {
	Source string `mapstructure:"source"`
}

type InventoryConfig struct {
	Workers int           `mapstructure:"workers"`
	Async   bool          `mapstructure:"async"`
	Timeout time.Duration `mapstructure:"timeout"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const envPrefix = "STOREFRONT"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.session_secret", "change-me-storefront-session-secret")
	v.SetDefault("server.secure_cookie", false)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.dsn", "./storefront.db?_journal_mode=WAL&_busy_timeout=5000")
	v.SetDefault("database.apply_schema", true)
	v.SetDefault("database.seed_dir", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", time.Hour)

	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.file_enable", false)
	v.SetDefault("logger.filename", "./logs/storefront.log")

	v.SetDefault("cart.data_file", "./carts.db")
	v.SetDefault("cart.cookie_name", "storefront_session")

	v.SetDefault("store.source", "website")

	v.SetDefault("inventory.workers", 1)
	v.SetDefault("inventory.async", true)
	v.SetDefault("inventory.timeout", 10*time.Second)
}

// LoadConfig reads path (if non-empty), then STOREFRONT_* environment
// variables, over the defaults. A missing file is an error only when a
// path was given explicitly.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var loaded Config
	if err := v.Unmarshal(&loaded); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if loaded.Inventory.Workers <= 0 {
		loaded.Inventory.Workers = 1
	}
	if loaded.Store.Source == "" {
		loaded.Store.Source = "website"
	}

	mu.Lock()
	cfg = loaded
	mu.Unlock()
	return loaded, nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
