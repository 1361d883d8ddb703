package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var (
	config *Config
	path   string
	mu     sync.RWMutex
	v      *viper.Viper
)

// Config represents the application configuration.
type Config struct {
	AppName string
	RunMode string
	Host    string
	Port    int
	Logger  *Logger
	Data    *Data
	Auth    *Auth
	Paging  *Paging
	Viper   *viper.Viper
}

func init() {
	v = newViper()
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetEnvPrefix("yatube")
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()
	return nv
}

// GetConfig returns the loaded configuration, loading it from the default
// search paths on first use.
func GetConfig() (*Config, error) {
	mu.RLock()
	cfg := config
	mu.RUnlock()
	if cfg != nil {
		return cfg, nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads the configuration from the file and makes it the current
// configuration. An empty configPath searches the default locations; a
// missing file there is not an error, defaults apply.
func LoadConfig(configPath string) (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	path = configPath
	v = newViper()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/yatube")
		v.AddConfigPath("$HOME/.yatube")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := fromViper(v)
	config = cfg
	return cfg, nil
}

// FromViper builds a configuration from an already populated viper instance.
func FromViper(nv *viper.Viper) *Config {
	return fromViper(nv)
}

func fromViper(nv *viper.Viper) *Config {
	return &Config{
		AppName: getStringOrDefault(nv, "app_name", "yatube"),
		RunMode: getStringOrDefault(nv, "run_mode", "release"),
		Host:    getStringOrDefault(nv, "server.host", "127.0.0.1"),
		Port:    getIntOrDefault(nv, "server.port", 8000),
		Logger:  getLoggerConfig(nv),
		Data:    getDataConfig(nv),
		Auth:    getAuthConfig(nv),
		Paging:  getPagingConfig(nv),
		Viper:   nv,
	}
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = fromViper(v)
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	mu.RLock()
	nv := v
	mu.RUnlock()

	nv.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		mu.RLock()
		cfg := config
		mu.RUnlock()
		callback(cfg)
	})
	nv.WatchConfig()
}
