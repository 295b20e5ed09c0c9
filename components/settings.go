package components

import "github.com/yohamta/donburi"

// SettingsData holds the overlay toggles. They persist between runs.
type SettingsData struct {
	Debug   bool
	ShowFPS bool
}

var Settings = donburi.NewComponentType[SettingsData]()
