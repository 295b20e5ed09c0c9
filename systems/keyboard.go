package systems

import (
	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/logging"
	"github.com/automoto/jumpcar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateKeyboard feeds this tick's key transitions to every vehicle
// controller. Presses are applied before releases.
//
// Losing window focus does not release anything: a key held while focus
// goes away stays held until its release arrives.
func UpdateKeyboard(e *ecs.ECS) {
	kbEntry, ok := components.Keyboard.First(e.World)
	if !ok {
		return
	}
	kb := components.Keyboard.Get(kbEntry)

	focused := ebiten.IsFocused()
	if kb.Focused && !focused {
		warnHeldOnBlur(e)
	}
	kb.Focused = focused

	kb.Pressed = inpututil.AppendJustPressedKeys(kb.Pressed[:0])
	kb.Released = inpututil.AppendJustReleasedKeys(kb.Released[:0])
	if len(kb.Pressed) == 0 && len(kb.Released) == 0 {
		return
	}

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		ctrl := components.Vehicle.Get(entry).Controller
		for _, k := range kb.Pressed {
			ctrl.KeyDown(config.KeyName(k))
		}
		for _, k := range kb.Released {
			ctrl.KeyUp(config.KeyName(k))
		}
	})
}

func warnHeldOnBlur(e *ecs.ECS) {
	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		held := components.Vehicle.Get(entry).Controller.Snapshot().Pressed()
		if len(held) == 0 {
			return
		}
		logging.L().Warn("window lost focus with keys held; they stay pressed until released",
			zap.Strings("keys", held))
	})
}
