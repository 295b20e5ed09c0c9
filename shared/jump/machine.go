// Package jump implements the double-jump budget and the landing detector
// that refills it.
//
// Ground contact is inferred from vertical velocity alone. A sample with
// |vy| below the landing threshold lands the vehicle, a sample above the
// liftoff threshold puts it back in the air, and samples in between change
// nothing so that noise around rest cannot flip the state every step.
package jump

import (
	"math"

	"github.com/automoto/jumpcar/shared/actuation"
)

const (
	DefaultLandThreshold    = 0.1
	DefaultLiftoffThreshold = 0.2
	DefaultMaxJumps         = 2
)

// Thresholds configures the landing detector.
type Thresholds struct {
	Land    float64 `yaml:"land"`    // |vy| strictly below this lands
	Liftoff float64 `yaml:"liftoff"` // |vy| strictly above this leaves the ground
}

func DefaultThresholds() Thresholds {
	return Thresholds{Land: DefaultLandThreshold, Liftoff: DefaultLiftoffThreshold}
}

// State is a copy of the machine's state.
type State struct {
	ConsumedJumps int
	Grounded      bool
}

// Transition names the effect of one feedback sample.
type Transition int

const (
	NoTransition Transition = iota
	Landed
	LiftedOff
)

func (t Transition) String() string {
	switch t {
	case Landed:
		return "landed"
	case LiftedOff:
		return "lifted-off"
	default:
		return "none"
	}
}

// Machine is owned by exactly one vehicle. It starts airborne with no jumps
// consumed.
type Machine struct {
	thresholds Thresholds
	maxJumps   int
	state      State
}

func NewMachine(th Thresholds, maxJumps int) *Machine {
	return &Machine{thresholds: th, maxJumps: maxJumps}
}

// Observe feeds one velocity sample into the landing detector.
func (m *Machine) Observe(s actuation.VelocitySample) Transition {
	vy := math.Abs(s.VY)
	switch {
	case vy < m.thresholds.Land && !m.state.Grounded:
		m.state.Grounded = true
		m.state.ConsumedJumps = 0
		return Landed
	case vy > m.thresholds.Liftoff && m.state.Grounded:
		m.state.Grounded = false
		return LiftedOff
	}
	return NoTransition
}

// TryJump consumes one jump if any remain. It does not look at the grounded
// flag: the budget is a number of impulses per landing.
func (m *Machine) TryJump() bool {
	if m.state.ConsumedJumps >= m.maxJumps {
		return false
	}
	m.state.ConsumedJumps++
	return true
}

func (m *Machine) State() State {
	return m.state
}

// Remaining returns how many jumps are left before the next landing.
func (m *Machine) Remaining() int {
	return m.maxJumps - m.state.ConsumedJumps
}
