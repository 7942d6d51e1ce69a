package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"swiper/internal/domain"
	"swiper/internal/eventbus"
)

// Defaults
const (
	DefaultThresholdRatio   = 0.25
	DefaultDampeningFactor  = 0.2
	DefaultCommitDurationMS = 250
	DefaultSpringFrequency  = 6.0
	DefaultSpringDamping    = 0.5
	DefaultFPS              = 60
	DefaultDelimiter        = "---"

	BackendSwipe  = "swipe"
	BackendNative = "native"
)

var (
	ErrInvalidThreshold = errors.New("threshold_ratio must be in (0, 1)")
	ErrInvalidDampening = errors.New("dampening_factor must be in (0, 1]")
	ErrInvalidBackend   = errors.New("backend must be swipe or native")
	ErrInvalidAnimation = errors.New("animation settings must be positive")
)

// Config represents the application configuration
type Config struct {
	Version         int     `toml:"version"`
	ThresholdRatio  float64 `toml:"threshold_ratio"`
	DampeningFactor float64 `toml:"dampening_factor"`
	InitialPage     int     `toml:"initial_page"`
	Axis            string  `toml:"axis"`
	Backend         string  `toml:"backend"`
	Delimiter       string  `toml:"delimiter"`

	Animation AnimationSettings `toml:"animation"`
}

// AnimationSettings configures commit and revert transitions
type AnimationSettings struct {
	CommitDurationMS int     `toml:"commit_duration_ms"`
	SpringFrequency  float64 `toml:"spring_frequency"`
	SpringDamping    float64 `toml:"spring_damping"`
	FPS              int     `toml:"fps"`
}

// CommitDuration returns the timed commit ramp length
func (a AnimationSettings) CommitDuration() time.Duration {
	return time.Duration(a.CommitDurationMS) * time.Millisecond
}

// PagingAxis returns the parsed axis, vertical for unknown values
func (c *Config) PagingAxis() domain.Axis {
	axis, err := domain.ParseAxis(c.Axis)
	if err != nil {
		return domain.AxisVertical
	}
	return axis
}

// Validate checks the configuration for values the paging core cannot use
func (c *Config) Validate() error {
	if c.ThresholdRatio <= 0 || c.ThresholdRatio >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.ThresholdRatio)
	}
	if c.DampeningFactor <= 0 || c.DampeningFactor > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDampening, c.DampeningFactor)
	}
	if _, err := domain.ParseAxis(c.Axis); err != nil {
		return err
	}
	if c.Backend != BackendSwipe && c.Backend != BackendNative {
		return fmt.Errorf("%w: got %q", ErrInvalidBackend, c.Backend)
	}
	a := c.Animation
	if a.CommitDurationMS <= 0 || a.SpringFrequency <= 0 || a.SpringDamping <= 0 || a.FPS <= 0 {
		return ErrInvalidAnimation
	}
	return nil
}

// fillDefaults replaces zero values left by a partial config file
func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	if c.ThresholdRatio == 0 {
		c.ThresholdRatio = d.ThresholdRatio
	}
	if c.DampeningFactor == 0 {
		c.DampeningFactor = d.DampeningFactor
	}
	if c.Axis == "" {
		c.Axis = d.Axis
	}
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Delimiter == "" {
		c.Delimiter = d.Delimiter
	}
	if c.Animation.CommitDurationMS == 0 {
		c.Animation.CommitDurationMS = d.Animation.CommitDurationMS
	}
	if c.Animation.SpringFrequency == 0 {
		c.Animation.SpringFrequency = d.Animation.SpringFrequency
	}
	if c.Animation.SpringDamping == 0 {
		c.Animation.SpringDamping = d.Animation.SpringDamping
	}
	if c.Animation.FPS == 0 {
		c.Animation.FPS = d.Animation.FPS
	}
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
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

// NewConfigService creates a config service for the default location
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

	return &configService{
		filePath: filepath.Join(configDir, "swiper", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support.
// An empty path selects the default location.
func NewConfigServiceWithBus(bus eventbus.EventBus, path string) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	if path != "" {
		cs.filePath = path
	}
	return cs
}

// Path returns the file Load and Save use
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or defaults if there is none
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
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

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:         1,
		ThresholdRatio:  DefaultThresholdRatio,
		DampeningFactor: DefaultDampeningFactor,
		InitialPage:     0,
		Axis:            domain.AxisVertical.String(),
		Backend:         BackendSwipe,
		Delimiter:       DefaultDelimiter,
		Animation: AnimationSettings{
			CommitDurationMS: DefaultCommitDurationMS,
			SpringFrequency:  DefaultSpringFrequency,
			SpringDamping:    DefaultSpringDamping,
			FPS:              DefaultFPS,
		},
	}
}
