// Package tuning is the file schema for the vehicle constants. It is shared
// by the game's config package and the headless replay tool, so it carries
// no ebitengine dependency.
package tuning

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/drive"
	"github.com/automoto/jumpcar/shared/jump"
	"github.com/automoto/jumpcar/shared/logging"
	"gopkg.in/yaml.v3"
)

// Jump groups the jump-limiting constants.
type Jump struct {
	Thresholds jump.Thresholds `yaml:",inline"`
	MaxJumps   int             `yaml:"maxJumps"`
}

// Set is one complete set of constants. Keys missing from a file keep the
// value the Set already held.
type Set struct {
	Drive   drive.Tuning    `yaml:"drive"`
	Jump    Jump            `yaml:"jump"`
	Chassis chassis.Config  `yaml:"chassis"`
	Logging logging.Options `yaml:"logging"`
}

func Default() Set {
	return Set{
		Drive: drive.DefaultTuning(),
		Jump: Jump{
			Thresholds: jump.DefaultThresholds(),
			MaxJumps:   jump.DefaultMaxJumps,
		},
		Chassis: chassis.DefaultConfig(),
		Logging: logging.Options{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Console:    true,
		},
	}
}

// Decode overlays YAML data onto s. Unknown keys are rejected so typos in a
// tuning file do not pass silently.
func Decode(data []byte, s *Set) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	next := *s
	if err := dec.Decode(&next); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode tuning: %w", err)
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*s = next
	return nil
}

// LoadFile overlays the YAML file at path onto s. s is left untouched on error.
func LoadFile(path string, s *Set) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	if err := Decode(data, s); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Validate rejects values the controller cannot work with.
func (s Set) Validate() error {
	switch {
	case s.Jump.MaxJumps < 0:
		return fmt.Errorf("jump.maxJumps must not be negative, got %d", s.Jump.MaxJumps)
	case s.Jump.Thresholds.Land < 0 || s.Jump.Thresholds.Liftoff < 0:
		return fmt.Errorf("jump thresholds must not be negative")
	case s.Jump.Thresholds.Land > s.Jump.Thresholds.Liftoff:
		return fmt.Errorf("jump.land (%g) above jump.liftoff (%g)", s.Jump.Thresholds.Land, s.Jump.Thresholds.Liftoff)
	case s.Chassis.Mass <= 0 || s.Chassis.Inertia <= 0:
		return fmt.Errorf("chassis mass and inertia must be positive")
	}
	if _, err := logging.ParseLevel(s.Logging.Level); err != nil {
		return err
	}
	return nil
}

// ControllerOptions builds controller options from the set.
func (s Set) ControllerOptions() drive.Options {
	return drive.Options{
		Tuning:     s.Drive,
		Thresholds: s.Jump.Thresholds,
		MaxJumps:   s.Jump.MaxJumps,
	}
}
