// Package leveldata parses arena TMX files into world-space data.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

// DefaultPixelsPerMetre is used when a map has no pixelsPerMetre property.
const DefaultPixelsPerMetre = 16

// Arena holds everything the drive scene needs from a TMX map. Distances are
// in metres on the ground plane, with the map centre at the world origin.
// Map X runs along world X and map Y along world Z.
type Arena struct {
	Name           string
	Walls          []WallRect
	Spawn          Spawn
	HasSpawn       bool
	MinX, MinZ     float64
	Width, Depth   float64
	PixelsPerMetre float64
}

// WallRect is a solid axis-aligned block.
type WallRect struct {
	X, Z, W, D float64
}

// Spawn is where the vehicle is placed, facing Heading radians of yaw.
type Spawn struct {
	X, Z    float64
	Heading float64
}
