package systems

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/fonts"
	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision objects and lists the controller state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	v, ok := currentView(ecs, screen)
	if !ok {
		return
	}

	if wallsEntry, ok := components.Walls.First(ecs.World); ok {
		walls := components.Walls.Get(wallsEntry)
		viewW, viewH := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

		for _, obj := range walls.Space().Objects() {
			wx, wz := walls.ToWorld(obj.X, obj.Y)
			x, y := v.toScreen(wx, wz)
			w, h := obj.W*v.zoom, obj.H*v.zoom

			// Cull objects outside viewport
			if x+w < 0 || x > viewW || y+h < 0 || y > viewH {
				continue
			}

			c := config.UI.DebugWallColor
			if obj.HasTags(chassis.FootprintTag) {
				c = config.UI.DebugBodyColor
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, c, false)
		}
	}

	entry, ok := tags.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	vehicle := components.Vehicle.Get(entry)
	body := vehicle.Body
	pos, vel := body.Pos(), body.Vel()
	js := vehicle.Controller.JumpState()

	lines := []string{
		"keys: " + heldKeys(vehicle.Controller.Snapshot().Pressed()),
		fmt.Sprintf("pos: %.2f %.2f %.2f", pos.X(), pos.Y(), pos.Z()),
		fmt.Sprintf("vel: %.2f %.2f %.2f", vel.X(), vel.Y(), vel.Z()),
		fmt.Sprintf("jumps used: %d grounded: %v", js.ConsumedJumps, js.Grounded),
	}
	lines = append(lines, actuation.Strings(vehicle.LastCommands)...)
	drawLines(screen, lines, float64(screen.Bounds().Dx())-220, config.UI.Margin, config.White)
}

// DrawFPS shows the measured frame and tick rates.
func DrawFPS(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowFPS {
		return
	}
	line := fmt.Sprintf("FPS %.0f  TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	drawLines(screen, []string{line}, config.UI.Margin, float64(screen.Bounds().Dy())-config.UI.Margin-config.UI.DebugFontSize, config.UI.TextColor)
}

func heldKeys(keys []string) string {
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = strconv.Quote(k)
	}
	return strings.Join(names, " ")
}

func drawLines(screen *ebiten.Image, lines []string, x, y float64, c color.Color) {
	face := fonts.Debug.Get()
	step := config.UI.DebugFontSize + 3
	for i, l := range lines {
		text.Draw(screen, l, face, int(x), int(y+step*float64(i+1)), c)
	}
}
