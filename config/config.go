package config

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"softring/protocol"
	"softring/sim"
)

const (
	EnvNodes       = "SOFTRING_NODES"
	EnvTargetArea  = "SOFTRING_TARGET_AREA"
	EnvSeed        = "SOFTRING_SEED"
	EnvWorldWidth  = "SOFTRING_WORLD_W"
	EnvWorldHeight = "SOFTRING_WORLD_H"
	EnvTickHz      = "SOFTRING_TICK_HZ"
	EnvFrames      = "SOFTRING_FRAMES"
	EnvDebug       = "SOFTRING_DEBUG"
)

// Settings are the runtime knobs that sit outside the simulation itself.
type Settings struct {
	TickHz      int
	WorldWidth  float64
	WorldHeight float64
	Frames      int // 0 runs until stopped
	Debug       bool
}

func DefaultSettings() Settings {
	return Settings{
		TickHz:      protocol.SimTickHz,
		WorldWidth:  sim.WorldWidth,
		WorldHeight: sim.WorldHeight,
	}
}

// InitConfig loads .env into the process environment. A missing file is fine.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using process environment")
		return
	}

	log.Println("Successfully loaded environment variables")
}

func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}

	return b, nil
}

// lookup reads key through GetEnvVariable. Unset or empty keys report
// false so the caller keeps its default.
func lookup(key string) (string, bool) {
	v, err := GetEnvVariable(key)
	return v, err == nil
}

// Load applies SOFTRING_* variables on top of the defaults. Unset variables
// keep their default; malformed ones are reported together.
func Load() (sim.Config, Settings, error) {
	cfg := sim.DefaultConfig()
	st := DefaultSettings()

	var errs []error
	parse := func(key string, fn func(string) error) {
		s, ok := lookup(key)
		if !ok {
			return
		}
		if err := fn(s); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key, err))
		}
	}
	setInt := func(key string, dst *int) {
		parse(key, func(s string) error {
			n, err := strconv.Atoi(s)
			if err == nil {
				*dst = n
			}
			return err
		})
	}
	setFloat := func(key string, dst *float64) {
		parse(key, func(s string) error {
			f, err := strconv.ParseFloat(s, 64)
			if err == nil {
				*dst = f
			}
			return err
		})
	}

	setInt(EnvNodes, &cfg.Nodes)
	setFloat(EnvTargetArea, &cfg.TargetArea)
	parse(EnvSeed, func(s string) error {
		n, err := strconv.ParseUint(s, 10, 64)
		if err == nil {
			cfg.Seed = n
		}
		return err
	})
	setFloat(EnvWorldWidth, &st.WorldWidth)
	setFloat(EnvWorldHeight, &st.WorldHeight)
	setInt(EnvTickHz, &st.TickHz)
	setInt(EnvFrames, &st.Frames)
	parse(EnvDebug, func(s string) error {
		b, err := strconv.ParseBool(s)
		if err == nil {
			st.Debug = b
		}
		return err
	})

	if st.TickHz < 0 {
		errs = append(errs, fmt.Errorf("%s = %d, must be >= 0", EnvTickHz, st.TickHz))
	}
	if !(st.WorldWidth > 0 && st.WorldHeight > 0) || math.IsInf(st.WorldWidth, 0) || math.IsInf(st.WorldHeight, 0) {
		errs = append(errs, fmt.Errorf("world %vx%v must be positive and finite", st.WorldWidth, st.WorldHeight))
	}
	if err := errors.Join(errs...); err != nil {
		return cfg, st, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, st, err
	}
	return cfg, st, nil
}
