package config

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputConfig holds the overlay toggles and the key identifier table.
type InputConfig struct {
	ToggleDebug ebiten.Key
	ToggleFPS   ebiten.Key
	Quit        ebiten.Key

	// Names overrides the identifier reported for a key. Keys not listed use
	// their lower-cased ebiten name ("A" -> "a", "ArrowUp" -> "arrowup").
	Names map[ebiten.Key]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		ToggleDebug: ebiten.KeyF3,
		ToggleFPS:   ebiten.KeyF4,
		Quit:        ebiten.KeyEscape,
		Names: map[ebiten.Key]string{
			ebiten.KeySpace:  " ",
			ebiten.KeyDigit0: "0",
			ebiten.KeyDigit1: "1",
			ebiten.KeyDigit2: "2",
			ebiten.KeyDigit3: "3",
			ebiten.KeyDigit4: "4",
			ebiten.KeyDigit5: "5",
			ebiten.KeyDigit6: "6",
			ebiten.KeyDigit7: "7",
			ebiten.KeyDigit8: "8",
			ebiten.KeyDigit9: "9",
		},
	}
}

// KeyName returns the identifier the controls use for k.
func KeyName(k ebiten.Key) string {
	if name, ok := Input.Names[k]; ok {
		return name
	}
	return strings.ToLower(k.String())
}
