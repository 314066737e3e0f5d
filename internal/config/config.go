package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"rowpick/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".rowpick.toml"

// ErrConfigNotFound is returned when a config file does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int             `toml:"version"`
	Data       DataSettings    `toml:"data"`
	UISettings UISettings      `toml:"ui"`
	Metrics    MetricsSettings `toml:"metrics"`
	Log        LogSettings     `toml:"log"`
}

// DataSettings controls the synthetic data source
type DataSettings struct {
	Rows      int   `toml:"rows"`
	Seed      int64 `toml:"seed"`
	BatchSize int   `toml:"batch_size"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowEmail    bool `toml:"show_email"`
	RowCacheSize int  `toml:"row_cache_size"`
}

// MetricsSettings configures the Prometheus endpoint; an empty Addr disables it
type MetricsSettings struct {
	Addr string `toml:"addr"`
}

// LogSettings configures the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, bool, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service that publishes a
// ConfigSavedEvent after every save
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to
// defaults when the file does not exist. The bool reports whether it existed.
func (cs *configService) Load() (*Config, bool, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, ErrConfigNotFound) {
		return DefaultConfig(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return cfg, true, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing fields keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports settings that cannot be used
func (c *Config) Validate() error {
	if c.Data.Rows < 0 {
		return fmt.Errorf("invalid config: data.rows must not be negative, got %d", c.Data.Rows)
	}
	if c.Data.BatchSize <= 0 {
		return fmt.Errorf("invalid config: data.batch_size must be positive, got %d", c.Data.BatchSize)
	}
	if c.UISettings.RowCacheSize <= 0 {
		return fmt.Errorf("invalid config: ui.row_cache_size must be positive, got %d", c.UISettings.RowCacheSize)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Data: DataSettings{
			Rows:      10000,
			Seed:      1,
			BatchSize: 1000,
		},
		UISettings: UISettings{
			ShowEmail:    true,
			RowCacheSize: 512,
		},
		Log: LogSettings{
			Path:  "rowpick.log",
			Level: "info",
		},
	}
}
