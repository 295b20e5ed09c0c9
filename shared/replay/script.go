// Package replay drives a controller and a chassis from a scripted key
// sequence, without a window, and records what happened on every tick.
package replay

import (
	"bytes"
	"fmt"
	"os"

	"github.com/automoto/jumpcar/shared/controls"
	"gopkg.in/yaml.v3"
)

// DefaultDT is one tick at 60 Hz.
const DefaultDT = 1.0 / 60

// Script is a named key sequence. Events at the same tick apply in file order.
type Script struct {
	Name   string      `yaml:"name"`
	DT     float64     `yaml:"dt"`
	Ticks  int         `yaml:"ticks"`
	Start  *[3]float64 `yaml:"start"` // defaults to the origin at ride height
	Events []Event     `yaml:"events"`
}

// Event presses or releases one key at the start of a tick.
type Event struct {
	Tick int     `yaml:"tick"`
	Down *string `yaml:"down"`
	Up   *string `yaml:"up"`
}

// Key returns the event as a controls event.
func (e Event) Key() controls.Event {
	if e.Down != nil {
		return controls.Event{Key: *e.Down, Down: true}
	}
	return controls.Event{Key: *e.Up}
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if s.DT == 0 {
		s.DT = DefaultDT
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads and parses the script at path.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func (s *Script) Validate() error {
	if s.DT <= 0 {
		return fmt.Errorf("dt must be positive, got %g", s.DT)
	}
	if s.Ticks <= 0 {
		return fmt.Errorf("ticks must be positive, got %d", s.Ticks)
	}
	for i, ev := range s.Events {
		if (ev.Down == nil) == (ev.Up == nil) {
			return fmt.Errorf("event %d: exactly one of down or up is required", i)
		}
		if ev.Tick < 0 || ev.Tick >= s.Ticks {
			return fmt.Errorf("event %d: tick %d outside [0, %d)", i, ev.Tick, s.Ticks)
		}
	}
	return nil
}
