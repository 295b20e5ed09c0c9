package systems

import (
	"fmt"

	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/fonts"
	"github.com/automoto/jumpcar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the jump pips, ground state and speed in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Vehicle.First(ecs.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(entry)
	ui := config.UI

	// One pip per jump, filled while still available.
	remaining := v.Controller.JumpsRemaining()
	for i := 0; i < config.Jump.MaxJumps; i++ {
		c := ui.PipEmptyColor
		if i < remaining {
			c = ui.PipFullColor
		}
		cx := ui.Margin + ui.PipRadius + float64(i)*ui.PipGap
		cy := ui.Margin + ui.PipRadius
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(ui.PipRadius), c, true)
	}

	state := "AIRBORNE"
	if v.Controller.JumpState().Grounded {
		state = "GROUNDED"
	}
	face := fonts.HUD.Get()
	lineY := int(ui.Margin + 2*ui.PipRadius + ui.HUDFontSize + 4)
	text.Draw(screen, state, face, int(ui.Margin), lineY, ui.TextColor)

	kmh := v.Body.Speed() * 3.6
	text.Draw(screen, fmt.Sprintf("%.0f km/h", kmh), face, int(ui.Margin), lineY+int(ui.HUDFontSize)+4, ui.TextColor)
}
