package cleaner

import (
	"errors"
	"fmt"

	"github.com/sarchlab/floorbot/sim"
)

// ErrInvalidConfig is returned when a Config cannot drive a controller.
var ErrInvalidConfig = errors.New("invalid cleaner config")

// Config holds the tunable parameters of a cleaning agent.
type Config struct {
	// ThinkInterval is the time between two decisions.
	ThinkInterval sim.VTimeInSec `yaml:"think_interval" json:"think_interval"`

	// ArriveDistance is how close the agent must get to a point to count as
	// having arrived.
	ArriveDistance float64 `yaml:"arrive_distance" json:"arrive_distance"`

	SeekWeight       float64 `yaml:"seek_weight" json:"seek_weight"`
	SweepSeekWeight  float64 `yaml:"sweep_seek_weight" json:"sweep_seek_weight"`
	WanderSeekWeight float64 `yaml:"wander_seek_weight" json:"wander_seek_weight"`

	WanderRadius   float64        `yaml:"wander_radius" json:"wander_radius"`
	WanderRetarget sim.VTimeInSec `yaml:"wander_retarget" json:"wander_retarget"`

	// ForgetDirtyAfter is how long a dirty tile stays in memory without being
	// seen again.
	ForgetDirtyAfter sim.VTimeInSec `yaml:"forget_dirty_after" json:"forget_dirty_after"`

	SweepStep  float64 `yaml:"sweep_step" json:"sweep_step"`
	SweepInset float64 `yaml:"sweep_inset" json:"sweep_inset"`

	CleaningDuration sim.VTimeInSec `yaml:"cleaning_duration" json:"cleaning_duration"`

	// Seed feeds the wander target picker.
	Seed int64 `yaml:"seed" json:"seed"`
}

// DefaultConfig returns the parameters that a typical agent uses.
func DefaultConfig() Config {
	return Config{
		ThinkInterval:    0.12,
		ArriveDistance:   0.55,
		SeekWeight:       1.0,
		SweepSeekWeight:  0.7,
		WanderSeekWeight: 0.6,
		WanderRadius:     6,
		WanderRetarget:   1.0,
		ForgetDirtyAfter: 10,
		SweepStep:        2,
		SweepInset:       2,
		CleaningDuration: 0.6,
		Seed:             1,
	}
}

// Validate reports the first parameter that is out of range.
func (c Config) Validate() error {
	switch {
	case c.ThinkInterval <= 0:
		return fmt.Errorf("%w: think interval must be positive", ErrInvalidConfig)
	case c.ArriveDistance < 0:
		return fmt.Errorf("%w: arrive distance must not be negative",
			ErrInvalidConfig)
	case c.SeekWeight < 0 || c.SweepSeekWeight < 0 || c.WanderSeekWeight < 0:
		return fmt.Errorf("%w: seek weights must not be negative",
			ErrInvalidConfig)
	case c.WanderRadius < 0:
		return fmt.Errorf("%w: wander radius must not be negative",
			ErrInvalidConfig)
	case c.WanderRetarget <= 0:
		return fmt.Errorf("%w: wander retarget interval must be positive",
			ErrInvalidConfig)
	case c.ForgetDirtyAfter < 0:
		return fmt.Errorf("%w: forget duration must not be negative",
			ErrInvalidConfig)
	case c.SweepStep <= 0 || c.SweepInset <= 0:
		return fmt.Errorf("%w: sweep step and inset must be positive",
			ErrInvalidConfig)
	case c.CleaningDuration < 0:
		return fmt.Errorf("%w: cleaning duration must not be negative",
			ErrInvalidConfig)
	}

	return nil
}
