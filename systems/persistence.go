package systems

import (
	"encoding/json"

	"github.com/automoto/jumpcar/components"
	"github.com/automoto/jumpcar/shared/logging"
	"github.com/quasilyte/gdata"
	"go.uber.org/zap"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Debug   bool `json:"debug"`
	ShowFPS bool `json:"showFps"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() *SavedSettings {
	if gdataManager == nil {
		return nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		logging.L().Warn("could not load settings", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		logging.L().Warn("could not parse saved settings", zap.Error(err))
		return nil
	}

	return &settings
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		logging.L().Warn("could not serialize settings", zap.Error(err))
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		logging.L().Warn("could not save settings", zap.Error(err))
		return err
	}
	return nil
}

// SaveCurrentSettings saves the overlay toggles from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Debug:   s.Debug,
		ShowFPS: s.ShowFPS,
	})
}

// ApplySavedSettings copies saved toggles onto the settings component.
func ApplySavedSettings(s *components.SettingsData, saved *SavedSettings) {
	if saved == nil {
		return
	}
	s.Debug = saved.Debug
	s.ShowFPS = saved.ShowFPS
}
