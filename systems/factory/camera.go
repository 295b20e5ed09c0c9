package factory

import (
	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the camera at x, y arena pixels so it does not pan in
// from the origin on the first frame.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
	})
}
