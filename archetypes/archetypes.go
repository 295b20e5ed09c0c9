package archetypes

import (
	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Walls = newArchetype(
		components.Walls,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Keyboard = newArchetype(
		components.Keyboard,
	)
	Pulse = newArchetype(
		tags.Pulse,
		components.Pulse,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
