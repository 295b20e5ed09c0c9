package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the camera centre in arena pixels.
type CameraData struct {
	Position  math.Vec2
	LookAhead math.Vec2 // Current smoothed offset along the heading
}

var Camera = donburi.NewComponentType[CameraData]()
