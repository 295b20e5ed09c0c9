package systems

import (
	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePulses advances pulse tweens by one tick and removes finished ones.
func UpdatePulses(e *ecs.ECS) {
	var done []*donburi.Entry
	tags.Pulse.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pulse.Get(entry)
		p.Value, p.Done = p.Tween.Update(1)
		if p.Done {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}
}
