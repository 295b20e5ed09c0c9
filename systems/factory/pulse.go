package factory

import (
	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePulse starts a ring animation at world x, z. The tween runs in
// ticks, from 0 to 1.
func CreatePulse(ecs *ecs.ECS, kind components.PulseKind, x, z float64) *donburi.Entry {
	pulse := archetypes.Pulse.Spawn(ecs)

	ticks, fn := cfg.Pulse.JumpTicks, ease.OutQuad
	if kind == components.PulseReset {
		ticks, fn = cfg.Pulse.ResetTicks, ease.OutCubic
	}

	components.Pulse.SetValue(pulse, components.PulseData{
		Kind:  kind,
		X:     x,
		Z:     z,
		Tween: gween.New(0, 1, float32(ticks), fn),
	})

	return pulse
}
