package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Azmathzahask/SOLIS/pkg/errors"
)

// Store backend names accepted in the config file.
const (
	storeBackendFile  = "file"
	storeBackendRedis = "redis"
	storeBackendMongo = "mongo"
)

// Config is the on-disk configuration, loaded from
// ~/.config/solis/config.toml. Every field has a working default so a
// missing file is not an error.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Store    StoreConfig    `toml:"store"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig seeds new design sessions.
type DefaultsConfig struct {
	Shape   string   `toml:"shape"`
	Radius  float64  `toml:"radius"`
	Height  float64  `toml:"height"`
	Systems []string `toml:"systems"`
}

// StoreConfig selects and configures the layout store backend.
type StoreConfig struct {
	Backend       string `toml:"backend"` // file (default), redis, mongo
	Path          string `toml:"path"`    // file backend directory override
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures serve mode.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// defaultConfig returns the configuration used when no file exists.
func defaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Shape:   "cylinder",
			Radius:  10,
			Height:  15,
			Systems: []string{"life-support", "power"},
		},
		Store: StoreConfig{
			Backend:       storeBackendFile,
			RedisAddr:     "localhost:6379",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "solis",
		},
		Server: ServerConfig{
			Addr: "localhost:8080",
		},
	}
}

// configPath returns the config file location (~/.config/solis/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file yields the defaults; a present but
// unparseable file is an INVALID_CONFIG error.
func loadConfig(path string) (Config, error) {
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return defaultConfig(), nil
		}
	}

	cfg := defaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}
