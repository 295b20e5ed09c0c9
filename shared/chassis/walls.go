package chassis

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Collision space tags.
const (
	WallTag      = "solid"
	FootprintTag = "vehicle"
)

// Rect is an axis-aligned wall footprint on the ground plane, in metres.
// X runs along world X and Z along world Z.
type Rect struct {
	X, Z, W, D float64
}

// Walls blocks horizontal movement against arena rectangles. The world
// X/Z plane maps onto resolv's X/Y plane at a fixed pixels-per-metre scale,
// offset so that MinX/MinZ sits at the space origin.
type Walls struct {
	space      *resolv.Space
	footprint  *resolv.Object
	scale      float64
	minX, minZ float64
	radius     float64
}

// NewWalls builds a collision space covering [minX, minX+width] by
// [minZ, minZ+depth] metres and adds rects as solid objects. radius is the
// half-size of the square footprint used for the vehicle.
func NewWalls(minX, minZ, width, depth, scale, radius float64, rects ...Rect) *Walls {
	const cell = 16
	w := &Walls{
		space:  resolv.NewSpace(int(math.Ceil(width*scale)), int(math.Ceil(depth*scale)), cell, cell),
		scale:  scale,
		minX:   minX,
		minZ:   minZ,
		radius: radius,
	}
	size := 2 * radius * scale
	w.footprint = resolv.NewObject(0, 0, size, size, FootprintTag)
	w.space.Add(w.footprint)
	for _, r := range rects {
		w.AddRect(r)
	}
	return w
}

// AddRect adds a solid rectangle and returns its collision object.
func (w *Walls) AddRect(r Rect) *resolv.Object {
	obj := resolv.NewObject((r.X-w.minX)*w.scale, (r.Z-w.minZ)*w.scale, r.W*w.scale, r.D*w.scale, WallTag)
	obj.SetShape(resolv.NewRectangle(0, 0, r.W*w.scale, r.D*w.scale))
	w.space.Add(obj)
	return obj
}

// Footprint is the vehicle's collision object.
func (w *Walls) Footprint() *resolv.Object {
	return w.footprint
}

// ToWorld maps a space point back to world X/Z.
func (w *Walls) ToWorld(px, py float64) (x, z float64) {
	return px/w.scale + w.minX, py/w.scale + w.minZ
}

// Space exposes the collision space for debug drawing.
func (w *Walls) Space() *resolv.Space {
	return w.space
}

// Scale returns pixels per metre.
func (w *Walls) Scale() float64 {
	return w.scale
}

// Origin returns the world X/Z that maps to the space origin.
func (w *Walls) Origin() (x, z float64) {
	return w.minX, w.minZ
}

// Sync moves the footprint to a world position.
func (w *Walls) Sync(pos mgl64.Vec3) {
	w.footprint.X = (pos.X() - w.radius - w.minX) * w.scale
	w.footprint.Y = (pos.Z() - w.radius - w.minZ) * w.scale
	w.footprint.Update()
}

// Move clips the horizontal displacement d of a body at pos against the
// walls, one axis at a time. It reports which axes were blocked.
func (w *Walls) Move(pos, d mgl64.Vec3) (mgl64.Vec3, bool, bool) {
	w.Sync(pos)
	var blockedX, blockedZ bool

	if dx := d.X() * w.scale; dx != 0 {
		if check := w.footprint.Check(dx, 0, WallTag); check != nil {
			d[0] = 0
			blockedX = true
		} else {
			w.footprint.X += dx
		}
	}
	if dz := d.Z() * w.scale; dz != 0 {
		if check := w.footprint.Check(0, dz, WallTag); check != nil {
			d[2] = 0
			blockedZ = true
		} else {
			w.footprint.Y += dz
		}
	}
	w.footprint.Update()
	return d, blockedX, blockedZ
}
