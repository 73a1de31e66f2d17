package config

import (
	"errors"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const DefaultConfigFileName = "config.toml"

// Config holds the settings shared by the server and the client. ServerURL
// is the single base-URL setting the client needs; the rest belongs to the
// server binary.
type Config struct {
	ServerURL  string `toml:"server_url"`
	ListenAddr string `toml:"listen_addr"`
	DBPath     string `toml:"db_path"` // empty means the default data directory
	LogLevel   string `toml:"log_level"`
}

// DefaultPath returns the config location under the XDG config directory,
// falling back to ~/.config.
func DefaultPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configDir = filepath.Join(home, ".config")
	}

	appDir := filepath.Join(configDir, "taskdeck")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, DefaultConfigFileName), nil
}

// LoadOrCreate reads the config at path, writing the defaults there first if
// no file exists yet.
func LoadOrCreate(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = defaultConfig().ServerURL
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultConfig().ListenAddr
	}
	return cfg, nil
}

func write(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultConfig() Config {
	return Config{
		ServerURL:  "http://127.0.0.1:8370",
		ListenAddr: "127.0.0.1:8370",
		DBPath:     "",
		LogLevel:   "info",
	}
}
