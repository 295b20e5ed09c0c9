package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// KeyboardData buffers this tick's key transitions.
type KeyboardData struct {
	Pressed  []ebiten.Key
	Released []ebiten.Key
	Focused  bool
}

var Keyboard = donburi.NewComponentType[KeyboardData]()
