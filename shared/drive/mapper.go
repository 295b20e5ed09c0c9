// Package drive turns a control snapshot into actuation commands and owns the
// per-vehicle control state.
package drive

import (
	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/controls"
)

// Key identifiers read by the mapper.
const (
	KeyForward   = "w"
	KeyReverse   = "s"
	KeyLeft      = "a"
	KeyRight     = "d"
	KeyTiltFront = "arrowup"
	KeyTiltBack  = "arrowdown"
	KeyTiltLeft  = "arrowleft"
	KeyTiltRight = "arrowright"
	KeyReset     = "r"
	KeyJump      = " "
)

// Wheel indices: 2 and 3 are driven and steered, 0 and 1 counter-steer.
const (
	frontLeft   = 0
	frontRight  = 1
	drivenLeft  = 2
	drivenRight = 3
	wheelCount  = 4
)

// Tuning holds the mapping constants.
type Tuning struct {
	EngineForce   float64        `yaml:"engineForce"`
	SteerAngle    float64        `yaml:"steerAngle"`   // driven pair
	CounterSteer  float64        `yaml:"counterSteer"` // opposite sign on wheels 0 and 1
	TiltImpulse   float64        `yaml:"tiltImpulse"`  // downward impulse for the arrow keys
	TiltLeverZ    float64        `yaml:"tiltLeverZ"`   // arrowup/arrowdown application point offset
	TiltLeverX    float64        `yaml:"tiltLeverX"`   // arrowleft/arrowright application point offset
	JumpImpulse   float64        `yaml:"jumpImpulse"`
	ResetPosition actuation.Vec3 `yaml:"resetPosition"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		EngineForce:   150,
		SteerAngle:    0.35,
		CounterSteer:  0.1,
		TiltImpulse:   5,
		TiltLeverZ:    1,
		TiltLeverX:    0.5,
		JumpImpulse:   200,
		ResetPosition: actuation.Vec3{-1.5, 0.5, 3},
	}
}

// JumpGate grants or refuses a jump. TryJump is the mapper's only side effect.
type JumpGate interface {
	TryJump() bool
}

// Mapper is stateless apart from its tuning.
type Mapper struct {
	Tuning Tuning
}

func NewMapper(t Tuning) Mapper {
	return Mapper{Tuning: t}
}

// Map returns the commands for one pass. Axes are evaluated independently in
// a fixed order: engine, steering, tilt impulses, reset, jump.
func (m Mapper) Map(s controls.State, jumps JumpGate) []actuation.Command {
	cmds := make([]actuation.Command, 0, 12)
	cmds = m.appendEngine(cmds, s)
	cmds = m.appendSteering(cmds, s)
	cmds = m.appendTilt(cmds, s)

	if s.Held(KeyReset) {
		cmds = append(cmds, actuation.ResetPose{Position: m.Tuning.ResetPosition})
	}

	if s.Held(KeyJump) && jumps != nil && jumps.TryJump() {
		cmds = append(cmds, actuation.ApplyImpulse{
			Impulse: actuation.Vec3{0, m.Tuning.JumpImpulse, 0},
		})
	}
	return cmds
}

func (m Mapper) appendEngine(cmds []actuation.Command, s controls.State) []actuation.Command {
	force := 0.0
	switch {
	case s.Held(KeyForward):
		force = m.Tuning.EngineForce
	case s.Held(KeyReverse):
		force = -m.Tuning.EngineForce
	}
	return append(cmds,
		actuation.SetEngineForce{Force: force, Wheel: drivenLeft},
		actuation.SetEngineForce{Force: force, Wheel: drivenRight},
	)
}

func (m Mapper) appendSteering(cmds []actuation.Command, s controls.State) []actuation.Command {
	var dir float64
	switch {
	case s.Held(KeyLeft):
		dir = 1
	case s.Held(KeyRight):
		dir = -1
	default:
		for i := 0; i < wheelCount; i++ {
			cmds = append(cmds, actuation.SetSteering{Angle: 0, Wheel: i})
		}
		return cmds
	}
	steer := dir * m.Tuning.SteerAngle
	counter := -dir * m.Tuning.CounterSteer
	return append(cmds,
		actuation.SetSteering{Angle: steer, Wheel: drivenLeft},
		actuation.SetSteering{Angle: steer, Wheel: drivenRight},
		actuation.SetSteering{Angle: counter, Wheel: frontLeft},
		actuation.SetSteering{Angle: counter, Wheel: frontRight},
	)
}

func (m Mapper) appendTilt(cmds []actuation.Command, s controls.State) []actuation.Command {
	down := actuation.Vec3{0, -m.Tuning.TiltImpulse, 0}
	tilts := []struct {
		key   string
		point actuation.Vec3
	}{
		{KeyTiltBack, actuation.Vec3{0, 0, m.Tuning.TiltLeverZ}},
		{KeyTiltFront, actuation.Vec3{0, 0, -m.Tuning.TiltLeverZ}},
		{KeyTiltLeft, actuation.Vec3{-m.Tuning.TiltLeverX, 0, 0}},
		{KeyTiltRight, actuation.Vec3{m.Tuning.TiltLeverX, 0, 0}},
	}
	for _, t := range tilts {
		if s.Held(t.key) {
			cmds = append(cmds, actuation.ApplyLocalImpulse{Impulse: down, Point: t.point})
		}
	}
	return cmds
}
