package systems

import (
	"image/color"
	"math"

	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/automoto/jumpcar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// view maps world metres on the ground plane to screen pixels.
type view struct {
	arena        *leveldata.Arena
	camX, camY   float64 // camera centre, arena pixels
	halfW, halfH float64
	zoom         float64
}

func currentView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return view{}, false
	}
	arena := components.Level.Get(levelEntry).Arena
	if arena == nil {
		return view{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	b := screen.Bounds()
	return view{
		arena: arena,
		camX:  camera.Position.X,
		camY:  camera.Position.Y,
		halfW: float64(b.Dx()) / 2,
		halfH: float64(b.Dy()) / 2,
		zoom:  config.Camera.Zoom,
	}, true
}

// pixels converts metres to screen pixels.
func (v view) pixels(m float64) float64 {
	return m * v.arena.PixelsPerMetre * v.zoom
}

// toScreen converts a world X/Z to screen coordinates.
func (v view) toScreen(x, z float64) (float64, float64) {
	ax := (x - v.arena.MinX) * v.arena.PixelsPerMetre
	ay := (z - v.arena.MinZ) * v.arena.PixelsPerMetre
	return (ax-v.camX)*v.zoom + v.halfW, (ay-v.camY)*v.zoom + v.halfH
}

// DrawArena draws the floor, a one-metre grid and the walls.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e, screen)
	if !ok {
		return
	}
	a := v.arena

	x0, y0 := v.toScreen(a.MinX, a.MinZ)
	vector.DrawFilledRect(screen, float32(x0), float32(y0),
		float32(v.pixels(a.Width)), float32(v.pixels(a.Depth)), config.UI.GroundColor, false)

	x1, y1 := v.toScreen(a.MinX+a.Width, a.MinZ+a.Depth)
	for m := math.Ceil(a.MinX); m <= a.MinX+a.Width; m++ {
		sx, _ := v.toScreen(m, 0)
		vector.StrokeLine(screen, float32(sx), float32(y0), float32(sx), float32(y1), 1, config.UI.GridColor, false)
	}
	for m := math.Ceil(a.MinZ); m <= a.MinZ+a.Depth; m++ {
		_, sy := v.toScreen(0, m)
		vector.StrokeLine(screen, float32(x0), float32(sy), float32(x1), float32(sy), 1, config.UI.GridColor, false)
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		w := components.Object.Get(entry).Rect
		wx, wy := v.toScreen(w.X, w.Z)
		vector.DrawFilledRect(screen, float32(wx), float32(wy),
			float32(v.pixels(w.W)), float32(v.pixels(w.D)), config.UI.WallColor, false)
	})
}

// DrawPulses draws jump rings and reset flashes.
func DrawPulses(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e, screen)
	if !ok {
		return
	}
	tags.Pulse.Each(e.World, func(entry *donburi.Entry) {
		p := components.Pulse.Get(entry)
		sx, sy := v.toScreen(p.X, p.Z)
		fade := uint8(255 * (1 - p.Value))

		switch p.Kind {
		case components.PulseJump:
			r := v.pixels(float64(p.Value) * config.Pulse.JumpRadius)
			c := config.UI.PipFullColor
			c.A = fade
			vector.StrokeCircle(screen, float32(sx), float32(sy), float32(r), 2, premultiply(c), true)
		case components.PulseReset:
			c := config.White
			c.A = fade / 2
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(v.pixels(1.5)), premultiply(c), true)
		}
	})
}

var (
	vehicleImage  *ebiten.Image
	vehicleDrawOp = &ebiten.DrawImageOptions{}
)

// vehicleSprite is a top-down box with a nose stripe, in arena pixels.
func vehicleSprite(ppm float64) *ebiten.Image {
	if vehicleImage != nil {
		return vehicleImage
	}
	ext := config.Chassis.HalfExtents
	w := int(math.Max(1, math.Round(2*ext.X()*ppm)))
	h := int(math.Max(1, math.Round(2*ext.Z()*ppm)))
	img := ebiten.NewImage(w, h)
	img.Fill(config.UI.BodyColor)
	nose := math.Max(2, float64(h)/6)
	vector.DrawFilledRect(img, 0, 0, float32(w), float32(nose), config.UI.NoseColor, false)
	vehicleImage = img
	return img
}

// DrawVehicle draws each vehicle top-down. Height above the ride height
// lifts the sprite off its shadow and scales it up slightly.
func DrawVehicle(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := currentView(e, screen)
	if !ok {
		return
	}
	img := vehicleSprite(v.arena.PixelsPerMetre)
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		body := components.Vehicle.Get(entry).Body
		pos := body.Pos()
		lift := math.Max(0, pos.Y()-body.Config().RideHeight)
		sx, sy := v.toScreen(pos.X(), pos.Z())

		shadow := v.pixels(body.Config().HalfExtents.Z()) / (1 + lift*0.3)
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(shadow), config.UI.ShadowColor, true)

		scale := v.zoom * (1 + lift*0.08)
		op := vehicleDrawOp
		op.GeoM.Reset()
		op.GeoM.Translate(-iw/2, -ih/2)
		op.GeoM.Rotate(-body.Heading())
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(sx, sy-v.pixels(lift))
		screen.DrawImage(img, op)
	})
}

func premultiply(c color.RGBA) color.RGBA {
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}
