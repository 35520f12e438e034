// Package config loads the settings of a floorbot run.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/floorbot/cleaner"
)

// ErrInvalidConfig is returned when a loaded configuration cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config is everything a run needs.
type Config struct {
	Cleaner cleaner.Config `yaml:"cleaner"`
	Floor   FloorConfig    `yaml:"floor"`
	Body    BodyConfig     `yaml:"body"`
	Soil    SoilConfig     `yaml:"soil"`
	Run     RunConfig      `yaml:"run"`
}

// FloorConfig describes the tile grid.
type FloorConfig struct {
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	TileSize float64 `yaml:"tile_size"`

	// DirtyFraction of the tiles start dirty.
	DirtyFraction float64 `yaml:"dirty_fraction"`
}

// BodyConfig describes the agent's body and senses.
type BodyConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	FreqHz       float64 `yaml:"freq_hz"`
	VisionRadius float64 `yaml:"vision_radius"`

	// The body starts at the center of the floor unless StartAt is set.
	StartAt *[2]float64 `yaml:"start_at,omitempty"`
}

// SoilConfig describes how tiles get dirty during a run.
type SoilConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Interval    float64 `yaml:"interval"`
	Probability float64 `yaml:"probability"`
}

// RunConfig controls the run itself.
type RunConfig struct {
	Duration        float64 `yaml:"duration"`
	ReportInterval  float64 `yaml:"report_interval"`
	Record          bool    `yaml:"record"`
	RecordDecisions bool    `yaml:"record_decisions"`
	Output          string  `yaml:"output"`
	Monitor         bool    `yaml:"monitor"`
	MonitorPort     int     `yaml:"monitor_port"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Cleaner: cleaner.DefaultConfig(),
		Floor: FloorConfig{
			Cols:          12,
			Rows:          12,
			TileSize:      1,
			DirtyFraction: 0.15,
		},
		Body: BodyConfig{
			MaxSpeed:     3,
			FreqHz:       30,
			VisionRadius: 4,
		},
		Soil: SoilConfig{
			Enabled:     true,
			Interval:    2,
			Probability: 0.5,
		},
		Run: RunConfig{
			Duration:        120,
			ReportInterval:  10,
			RecordDecisions: true,
		},
	}
}

// Load reads a YAML file on top of the defaults, then applies FLOORBOT_*
// environment variables. Variables may come from the given dotenv files. An
// empty path skips the YAML file.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := decodeKnownFields(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	if err := cfg.applyEnvOverrides(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decodeKnownFields(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Cleaner.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	switch {
	case c.Floor.Cols <= 0 || c.Floor.Rows <= 0:
		return fmt.Errorf("%w: floor must have at least one tile", ErrInvalidConfig)
	case c.Floor.TileSize <= 0:
		return fmt.Errorf("%w: tile size must be positive", ErrInvalidConfig)
	case c.Floor.DirtyFraction < 0 || c.Floor.DirtyFraction > 1:
		return fmt.Errorf("%w: dirty fraction must be within [0, 1]",
			ErrInvalidConfig)
	case c.Body.MaxSpeed <= 0 || c.Body.FreqHz <= 0:
		return fmt.Errorf("%w: body speed and frequency must be positive",
			ErrInvalidConfig)
	case c.Soil.Enabled && c.Soil.Interval <= 0:
		return fmt.Errorf("%w: soil interval must be positive", ErrInvalidConfig)
	case c.Soil.Probability < 0 || c.Soil.Probability > 1:
		return fmt.Errorf("%w: soil probability must be within [0, 1]",
			ErrInvalidConfig)
	case c.Run.Duration < 0:
		return fmt.Errorf("%w: duration must not be negative", ErrInvalidConfig)
	case c.Run.ReportInterval <= 0:
		return fmt.Errorf("%w: report interval must be positive",
			ErrInvalidConfig)
	case c.Run.MonitorPort < 0 || c.Run.MonitorPort > 65535:
		return fmt.Errorf("%w: monitor port out of range", ErrInvalidConfig)
	}

	return nil
}
