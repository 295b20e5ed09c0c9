package tuning

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLoadFile(t *testing.T) {
	tests := []struct {
		name       string
		createFile bool
		content    string
		wantErr    bool
		validate   func(t *testing.T, s Set, err error)
	}{
		{
			name:       "partial override keeps defaults",
			createFile: true,
			content: `drive:
  engineForce: 220
  resetPosition: [0, 1, 0]
jump:
  maxJumps: 3
`,
			validate: func(t *testing.T, s Set, err error) {
				def := Default()
				if s.Drive.EngineForce != 220 {
					t.Errorf("Drive.EngineForce = %g, want 220", s.Drive.EngineForce)
				}
				if s.Drive.ResetPosition != (mgl64.Vec3{0, 1, 0}) {
					t.Errorf("Drive.ResetPosition = %v", s.Drive.ResetPosition)
				}
				if s.Drive.SteerAngle != def.Drive.SteerAngle {
					t.Errorf("Drive.SteerAngle = %g, want default %g", s.Drive.SteerAngle, def.Drive.SteerAngle)
				}
				if s.Jump.MaxJumps != 3 {
					t.Errorf("Jump.MaxJumps = %d, want 3", s.Jump.MaxJumps)
				}
				if s.Jump.Thresholds != def.Jump.Thresholds {
					t.Errorf("Jump.Thresholds = %+v, want defaults", s.Jump.Thresholds)
				}
			},
		},
		{
			name:       "thresholds inline under jump",
			createFile: true,
			content: `jump:
  land: 0.05
  liftoff: 0.3
logging:
  level: debug
  file: drive.log
`,
			validate: func(t *testing.T, s Set, err error) {
				if s.Jump.Thresholds.Land != 0.05 || s.Jump.Thresholds.Liftoff != 0.3 {
					t.Errorf("Jump.Thresholds = %+v", s.Jump.Thresholds)
				}
				if s.Logging.Level != "debug" || s.Logging.File != "drive.log" {
					t.Errorf("Logging = %+v", s.Logging)
				}
			},
		},
		{
			name:       "empty file",
			createFile: true,
			content:    "",
			validate: func(t *testing.T, s Set, err error) {
				if s.Drive != Default().Drive {
					t.Errorf("empty file changed drive tuning: %+v", s.Drive)
				}
			},
		},
		{
			name:       "missing file",
			createFile: false,
			wantErr:    true,
			validate: func(t *testing.T, s Set, err error) {
				if !errors.Is(err, fs.ErrNotExist) {
					t.Errorf("want ErrNotExist, got %v", err)
				}
			},
		},
		{
			name:       "unknown key",
			createFile: true,
			content:    "drive:\n  engineForse: 1\n",
			wantErr:    true,
		},
		{
			name:       "land above liftoff",
			createFile: true,
			content:    "jump:\n  land: 0.5\n  liftoff: 0.2\n",
			wantErr:    true,
		},
		{
			name:       "bad log level",
			createFile: true,
			content:    "logging:\n  level: loud\n",
			wantErr:    true,
		},
		{
			name:       "reset position needs three values",
			createFile: true,
			content:    "drive:\n  resetPosition: [1, 2]\n",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tuning.yaml")
			if tt.createFile {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			s := Default()
			err := LoadFile(path, &s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && s.Drive != Default().Drive {
				t.Error("failed load modified the set")
			}
			if tt.validate != nil {
				tt.validate(t, s, err)
			}
		})
	}
}

func TestControllerOptions(t *testing.T) {
	s := Default()
	s.Jump.MaxJumps = 4
	opts := s.ControllerOptions()
	if opts.MaxJumps != 4 || opts.Tuning != s.Drive || opts.Thresholds != s.Jump.Thresholds {
		t.Errorf("ControllerOptions() = %+v", opts)
	}
}
