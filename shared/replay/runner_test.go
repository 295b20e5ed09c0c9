package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/jumpcar/shared/tuning"
)

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name: "valid",
			src: `name: hop
ticks: 10
events:
  - {tick: 0, down: " "}
  - {tick: 4, up: " "}
`,
		},
		{name: "no ticks", src: "name: x\n", wantErr: "ticks"},
		{name: "negative dt", src: "ticks: 3\ndt: -1\n", wantErr: "dt"},
		{name: "both down and up", src: "ticks: 3\nevents:\n  - {tick: 0, down: w, up: w}\n", wantErr: "exactly one"},
		{name: "neither down nor up", src: "ticks: 3\nevents:\n  - {tick: 0}\n", wantErr: "exactly one"},
		{name: "tick past end", src: "ticks: 3\nevents:\n  - {tick: 3, down: w}\n", wantErr: "outside"},
		{name: "unknown field", src: "ticks: 3\nspeed: 2\n", wantErr: "decode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseDefaults(t *testing.T) {
	s := mustParse(t, "ticks: 1\n")
	if s.DT != DefaultDT {
		t.Errorf("DT = %g, want %g", s.DT, DefaultDT)
	}
	if s.Start != nil {
		t.Errorf("Start = %v, want nil", s.Start)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	if err := os.WriteFile(path, []byte("name: drive\nticks: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "drive" || s.Ticks != 2 {
		t.Errorf("got %+v", s)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestIdleRunSettles(t *testing.T) {
	res := Run(mustParse(t, "ticks: 30\n"), tuning.Default(), nil)
	if len(res.Frames) != 30 {
		t.Fatalf("got %d frames", len(res.Frames))
	}
	first := res.Frames[0]
	if !first.Grounded {
		t.Error("resting body not grounded after the first tick")
	}
	if len(first.Commands) != 6 {
		t.Errorf("idle pass issued %v, want engine and steering only", first.Commands)
	}
	if first.Commands[0] != "SetEngineForce(0, 2)" {
		t.Errorf("first command %q", first.Commands[0])
	}
	if res.Jumps() != 0 {
		t.Errorf("Jumps() = %d", res.Jumps())
	}
}

func TestHeldSpaceJumpsTwice(t *testing.T) {
	s := mustParse(t, `ticks: 10
events:
  - {tick: 0, down: " "}
`)
	res := Run(s, tuning.Default(), nil)
	if got := res.Jumps(); got != 2 {
		t.Fatalf("Jumps() = %d, want 2", got)
	}
	for _, f := range res.Frames[2:] {
		if f.JumpsUsed != 2 {
			t.Errorf("tick %d: JumpsUsed = %d, want 2", f.Tick, f.JumpsUsed)
		}
		if len(f.Held) != 1 || f.Held[0] != " " {
			t.Errorf("tick %d: held %q", f.Tick, f.Held)
		}
	}
}

// Near the apex |vy| drops under the landing threshold, so the budget refills
// in mid-air and held space keeps jumping.
func TestHeldSpaceRefillsAtApex(t *testing.T) {
	s := mustParse(t, `ticks: 240
events:
  - {tick: 0, down: " "}
`)
	set := tuning.Default()
	res := Run(s, set, nil)

	if got := res.Jumps(); got <= 2 {
		t.Fatalf("Jumps() = %d over 240 held ticks, want more than 2", got)
	}
	refilled := -1
	for _, f := range res.Frames[2:] {
		if f.Grounded && f.JumpsUsed == 0 && f.Position[1] > set.Chassis.RideHeight+0.1 {
			refilled = f.Tick
			break
		}
	}
	if refilled < 0 {
		t.Fatal("no mid-air landing found")
	}
	next := res.Frames[refilled+1]
	if len(next.Commands) == 0 || !strings.HasPrefix(next.Commands[len(next.Commands)-1], "ApplyImpulse(") {
		t.Errorf("tick %d after the refill issued %q, want a jump", next.Tick, next.Commands)
	}
}

func TestLandingRestoresJumps(t *testing.T) {
	s := mustParse(t, `ticks: 200
events:
  - {tick: 0, down: " "}
  - {tick: 3, up: " "}
  - {tick: 150, down: " "}
  - {tick: 151, up: " "}
`)
	res := Run(s, tuning.Default(), nil)

	before := res.Frames[149]
	if !before.Grounded || before.JumpsUsed != 0 {
		t.Fatalf("tick 149: grounded=%v used=%d, want landed with the count reset", before.Grounded, before.JumpsUsed)
	}
	after := res.Frames[150]
	if after.Grounded || after.JumpsUsed != 1 {
		t.Errorf("tick 150: grounded=%v used=%d, want airborne after one jump", after.Grounded, after.JumpsUsed)
	}
	if got := res.Jumps(); got != 3 {
		t.Errorf("Jumps() = %d, want 3", got)
	}
}

func TestThrottleMovesForward(t *testing.T) {
	s := mustParse(t, `ticks: 60
events:
  - {tick: 0, down: W}
`)
	res := Run(s, tuning.Default(), nil)
	last := res.Frames[len(res.Frames)-1]
	if last.Position[2] >= 0 {
		t.Errorf("z = %g after a second of throttle, want negative", last.Position[2])
	}
	if last.Commands[0] != "SetEngineForce(150, 2)" {
		t.Errorf("first command %q", last.Commands[0])
	}
}

func TestStartPosition(t *testing.T) {
	s := mustParse(t, "ticks: 5\nstart: [0, 3, 0]\n")
	res := Run(s, tuning.Default(), nil)
	if res.Frames[0].Grounded {
		t.Error("grounded while falling")
	}
	if y := res.Frames[4].Position[1]; y >= 3 {
		t.Errorf("y = %g, want the body falling", y)
	}
}

func TestRunLeavesScriptUntouched(t *testing.T) {
	s := mustParse(t, `ticks: 3
events:
  - {tick: 2, down: w}
  - {tick: 0, down: a}
`)
	Run(s, tuning.Default(), nil)
	if s.Events[0].Tick != 2 {
		t.Error("Run reordered the script's events")
	}
}

func TestBundledScript(t *testing.T) {
	s, err := LoadFile(filepath.Join("testdata", "double-jump.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	res := Run(s, tuning.Default(), nil)
	if got := res.Jumps(); got != 2 {
		t.Errorf("Jumps() = %d, want 2", got)
	}
	if res.Frames[len(res.Frames)-1].Position[2] >= 0 {
		t.Error("vehicle did not drive forward")
	}
}
