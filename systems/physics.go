package systems

import (
	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances every vehicle body by one fixed tick. Bodies
// publish their velocity as they step, so jump state follows here.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)
	tags.Vehicle.Each(ecs.World, func(e *donburi.Entry) {
		components.Vehicle.Get(e).Body.Step(dt)
	})
}
