package systems

import (
	"math"

	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/gamemath"
	"github.com/automoto/jumpcar/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	vehicleEntry, ok := tags.Vehicle.First(e.World)
	if !ok {
		return
	}
	body := components.Vehicle.Get(vehicleEntry).Body

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	arena := components.Level.Get(levelEntry).Arena
	if arena == nil {
		return
	}
	ppm := arena.PixelsPerMetre
	zoom := config.Camera.Zoom

	// Look ahead along the heading, scaled by speed.
	fwd := body.Forward()
	lead := gamemath.Clamp(body.Speed()/config.Camera.LookAheadSpeed, 1) * config.Camera.LookAheadDistance / zoom
	camera.LookAhead.X += (fwd.X()*lead - camera.LookAhead.X) * config.Camera.FollowSmoothing
	camera.LookAhead.Y += (fwd.Z()*lead - camera.LookAhead.Y) * config.Camera.FollowSmoothing

	pos := body.Pos()
	targetX := (pos.X()-arena.MinX)*ppm + camera.LookAhead.X
	targetY := (pos.Z()-arena.MinZ)*ppm + camera.LookAhead.Y

	// Keep the arena filling the screen where it is big enough to.
	halfW := float64(config.C.Width) / 2 / zoom
	halfH := float64(config.C.Height) / 2 / zoom
	targetX = clampAxis(targetX, halfW, arena.Width*ppm)
	targetY = clampAxis(targetY, halfH, arena.Depth*ppm)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

func clampAxis(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}
