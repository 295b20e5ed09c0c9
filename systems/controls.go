package systems

import (
	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/systems/factory"
	"github.com/automoto/jumpcar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControls runs one controller pass per vehicle and starts a pulse for
// each jump or reset it issued.
func UpdateControls(e *ecs.ECS) {
	type pulse struct {
		kind components.PulseKind
		x, z float64
	}
	var pulses []pulse

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		v := components.Vehicle.Get(entry)
		v.LastCommands = v.Controller.Tick()

		for _, cmd := range v.LastCommands {
			switch cmd.(type) {
			case actuation.ApplyImpulse:
				pos := v.Body.Pos()
				pulses = append(pulses, pulse{components.PulseJump, pos.X(), pos.Z()})
			case actuation.ResetPose:
				pos := v.Body.Pos()
				pulses = append(pulses, pulse{components.PulseReset, pos.X(), pos.Z()})
			}
		}
	})

	// Spawned outside Each; the query must not see new entities mid-iteration.
	for _, p := range pulses {
		factory.CreatePulse(e, p.kind, p.x, p.z)
	}
}
