package factory

import (
	"fmt"

	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/assets"
	"github.com/automoto/jumpcar/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the embedded arenas and selects the one called name.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	arenas, names := assets.MustLoadArenas()
	arena, ok := arenas[name]
	if !ok {
		panic(fmt.Sprintf("arena %q not found, have %v", name, names))
	}

	components.Level.Set(level, &components.LevelData{Arena: arena})

	return level
}
