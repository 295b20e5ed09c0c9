package factory

import (
	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, r leveldata.WallRect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	data := components.ObjectData{Rect: r}

	// Add to the collision space if it exists
	if wallsEntry, ok := components.Walls.First(ecs.World); ok {
		data.Object = components.Walls.Get(wallsEntry).AddRect(chassis.Rect{X: r.X, Z: r.Z, W: r.W, D: r.D})
		data.Object.Data = wall // Link for O(1) lookup
	}

	components.Object.SetValue(wall, data)
	return wall
}
