package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadFileOverridesGlobals(t *testing.T) {
	saved := Tuning()
	t.Cleanup(func() { applyTuning(saved) })

	path := filepath.Join(t.TempDir(), "jumpcar.yaml")
	content := "drive:\n  jumpImpulse: 250\nchassis:\n  mass: 200\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if Drive.JumpImpulse != 250 {
		t.Errorf("Drive.JumpImpulse = %g, want 250", Drive.JumpImpulse)
	}
	if Chassis.Mass != 200 {
		t.Errorf("Chassis.Mass = %g, want 200", Chassis.Mass)
	}
	if Drive.EngineForce != saved.Drive.EngineForce {
		t.Errorf("Drive.EngineForce changed to %g", Drive.EngineForce)
	}
}

func TestLoadFileErrorKeepsGlobals(t *testing.T) {
	saved := Tuning()
	t.Cleanup(func() { applyTuning(saved) })

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("drive:\n  jumpImpulse: [1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err == nil {
		t.Fatal("malformed file accepted")
	}
	if Drive != saved.Drive {
		t.Errorf("globals changed after failed load: %+v", Drive)
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyW, "w"},
		{ebiten.KeyS, "s"},
		{ebiten.KeyArrowUp, "arrowup"},
		{ebiten.KeyArrowLeft, "arrowleft"},
		{ebiten.KeySpace, " "},
		{ebiten.KeyR, "r"},
		{ebiten.KeyDigit1, "1"},
		{ebiten.KeyEnter, "enter"},
	}
	for _, tt := range tests {
		if got := KeyName(tt.key); got != tt.want {
			t.Errorf("KeyName(%v) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
