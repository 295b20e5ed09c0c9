package factory

import (
	"math"

	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWalls builds the arena collision space, sized to the arena, with a
// footprint big enough for the configured chassis.
func CreateWalls(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	entry := archetypes.Walls.Spawn(ecs)
	ext := cfg.Chassis.HalfExtents
	radius := math.Max(ext.X(), ext.Z())
	walls := chassis.NewWalls(arena.MinX, arena.MinZ, arena.Width, arena.Depth, arena.PixelsPerMetre, radius)
	components.Walls.Set(entry, walls)
	return entry
}
