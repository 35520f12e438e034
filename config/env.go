package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// EnvPrefix is the prefix of all environment overrides.
const EnvPrefix = "FLOORBOT_"

// loadEnvFiles reads dotenv files into the process environment. Missing files
// are skipped and variables that are already set win.
func loadEnvFiles(files []string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}

		return fmt.Errorf("failed to load %s: %w", f, err)
	}

	return nil
}

type lookupFunc func(key string) (string, bool)

func (c *Config) applyEnvOverrides(lookup lookupFunc) error {
	var errs []error

	float := func(name string, dst *float64) {
		if v, ok := lookup(EnvPrefix + name); ok {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}

			*dst = f
		}
	}

	integer := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			i, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}

			*dst = i
		}
	}

	boolean := func(name string, dst *bool) {
		if v, ok := lookup(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}

			*dst = b
		}
	}

	float("DURATION", &c.Run.Duration)
	boolean("RECORD", &c.Run.Record)
	boolean("MONITOR", &c.Run.Monitor)
	integer("MONITOR_PORT", &c.Run.MonitorPort)

	if v, ok := lookup(EnvPrefix + "OUTPUT"); ok {
		c.Run.Output = v
	}

	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			c.Cleaner.Seed = seed
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}
