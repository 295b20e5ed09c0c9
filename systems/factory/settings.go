package factory

import (
	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSettings(ecs *ecs.ECS, s components.SettingsData) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, s)
	return settings
}

func CreateKeyboard(ecs *ecs.ECS) *donburi.Entry {
	kb := archetypes.Keyboard.Spawn(ecs)
	components.Keyboard.SetValue(kb, components.KeyboardData{Focused: true})
	return kb
}
