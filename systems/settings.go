package systems

import (
	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/systems/factory"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the overlay settings, creating them from the
// config defaults on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if entry, ok := components.Settings.First(e.World); ok {
		return components.Settings.Get(entry)
	}
	entry := factory.CreateSettings(e, components.SettingsData{
		Debug:   config.Overlay.Debug,
		ShowFPS: config.Overlay.ShowFPS,
	})
	return components.Settings.Get(entry)
}

// UpdateSettings flips the debug and FPS overlays and saves the new state.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	changed := false

	if inpututil.IsKeyJustPressed(config.Input.ToggleDebug) {
		settings.Debug = !settings.Debug
		changed = true
	}
	if inpututil.IsKeyJustPressed(config.Input.ToggleFPS) {
		settings.ShowFPS = !settings.ShowFPS
		changed = true
	}

	if changed {
		SaveCurrentSettings(settings)
	}
}
