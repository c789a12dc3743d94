package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/vermaneerajin/uhabits/internal/domain"
	"github.com/vermaneerajin/uhabits/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version      int        `toml:"version"`
	DatabasePath string     `toml:"database_path"`
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScores   bool `toml:"show_scores"`
	ShowArchived bool `toml:"show_archived"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	uhabitsDir := filepath.Join(configDir, "uhabits")
	os.MkdirAll(uhabitsDir, 0755)

	return &configService{
		filePath: filepath.Join(uhabitsDir, "uhabits.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads the configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run, start from defaults and persist them
			config := DefaultConfig()
			if saveErr := cs.SaveToPath(config, path); saveErr != nil {
				return nil, fmt.Errorf("failed to write default config: %w", saveErr)
			}
			cs.publishLoaded(config)
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.DatabasePath == "" {
		config.DatabasePath = DefaultConfig().DatabasePath
	}

	cs.publishLoaded(&config)
	return &config, nil
}

// SaveToPath saves the configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigSavedEvent{})
	}
	return nil
}

func (cs *configService) publishLoaded(config *Config) {
	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{DatabasePath: config.DatabasePath})
	}
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	dataDir, err := os.UserHomeDir()
	if err != nil {
		dataDir = "."
	}
	return &Config{
		Version:      1,
		DatabasePath: filepath.Join(dataDir, ".local", "share", "uhabits", "uhabits.db"),
		UISettings: UISettings{
			ShowScores:   true,
			ShowArchived: false,
		},
	}
}
