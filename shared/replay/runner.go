package replay

import (
	"sort"
	"strings"

	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/drive"
	"github.com/automoto/jumpcar/shared/tuning"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

// Frame is the state after one tick: the commands the controller issued,
// then the body after stepping.
type Frame struct {
	Tick      int        `json:"tick"`
	Held      []string   `json:"held,omitempty"`
	Commands  []string   `json:"commands,omitempty"`
	Position  [3]float64 `json:"position"`
	Velocity  [3]float64 `json:"velocity"`
	JumpsUsed int        `json:"jumpsUsed"`
	Grounded  bool       `json:"grounded"`
}

type Result struct {
	Name   string  `json:"name"`
	DT     float64 `json:"dt"`
	Frames []Frame `json:"frames"`
}

// Jumps counts the jump impulses issued over the run.
func (r *Result) Jumps() int {
	n := 0
	for _, f := range r.Frames {
		for _, c := range f.Commands {
			if strings.HasPrefix(c, "ApplyImpulse(") {
				n++
			}
		}
	}
	return n
}

// Run plays the script against a fresh controller and chassis built from set.
// Each tick applies that tick's events, runs one controller pass, then steps
// the body by the script's dt.
func Run(s *Script, set tuning.Set, log *zap.Logger) *Result {
	if log == nil {
		log = zap.NewNop()
	}

	start := mgl64.Vec3{0, set.Chassis.RideHeight, 0}
	if s.Start != nil {
		start = mgl64.Vec3(*s.Start)
	}
	body := chassis.New(set.Chassis, start)

	opts := set.ControllerOptions()
	opts.Logger = log
	ctrl := drive.NewController(opts)
	ctrl.Attach(body, body)
	defer ctrl.Close()

	events := make([]Event, len(s.Events))
	copy(events, s.Events)
	sort.SliceStable(events, func(i, j int) bool { return events[i].Tick < events[j].Tick })

	res := &Result{Name: s.Name, DT: s.DT, Frames: make([]Frame, 0, s.Ticks)}
	next := 0
	for tick := 0; tick < s.Ticks; tick++ {
		for next < len(events) && events[next].Tick == tick {
			ctrl.Apply(events[next].Key())
			next++
		}

		cmds := ctrl.Tick()
		body.Step(s.DT)

		js := ctrl.JumpState()
		res.Frames = append(res.Frames, Frame{
			Tick:      tick,
			Held:      ctrl.Snapshot().Pressed(),
			Commands:  actuation.Strings(cmds),
			Position:  body.Pos(),
			Velocity:  body.Vel(),
			JumpsUsed: js.ConsumedJumps,
			Grounded:  js.Grounded,
		})
	}

	log.Debug("replay finished",
		zap.String("script", s.Name),
		zap.Int("ticks", s.Ticks),
		zap.Int("jumps", res.Jumps()),
	)
	return res
}
