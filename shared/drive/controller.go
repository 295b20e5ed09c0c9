package drive

import (
	"reflect"

	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/controls"
	"github.com/automoto/jumpcar/shared/jump"
	"go.uber.org/zap"
)

// Controller owns the control state of one vehicle: its key tracker, its jump
// machine and its subscription to the chassis velocity feed. All methods must
// be called from the simulation goroutine.
type Controller struct {
	tracker *controls.Tracker
	jumps   *jump.Machine
	mapper  Mapper

	vehicle     actuation.VehiclePort
	chassis     actuation.ChassisPort
	unsubscribe func()

	log *zap.Logger
}

// Options configures a Controller.
type Options struct {
	Tuning     Tuning
	Thresholds jump.Thresholds
	MaxJumps   int
	Logger     *zap.Logger
}

func DefaultOptions() Options {
	return Options{
		Tuning:     DefaultTuning(),
		Thresholds: jump.DefaultThresholds(),
		MaxJumps:   jump.DefaultMaxJumps,
	}
}

func NewController(opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		tracker: controls.NewTracker(),
		jumps:   jump.NewMachine(opts.Thresholds, opts.MaxJumps),
		mapper:  NewMapper(opts.Tuning),
		log:     log,
	}
}

// Attach connects the controller to its ports and subscribes to velocity
// feedback. Attaching again replaces the previous ports and subscription.
// A nil pointer wrapped in a port interface counts as a missing port.
func (c *Controller) Attach(v actuation.VehiclePort, ch actuation.ChassisPort) {
	c.detach()
	c.vehicle = nil
	c.chassis = nil
	if !isNilPort(v) {
		c.vehicle = v
	}
	if !isNilPort(ch) {
		c.chassis = ch
	}
	if c.chassis != nil {
		c.unsubscribe = c.chassis.SubscribeVelocity(c.observe)
	}
}

func isNilPort(p any) bool {
	if p == nil {
		return true
	}
	switch v := reflect.ValueOf(p); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Close drops the velocity subscription and the ports. It is safe to call
// more than once.
func (c *Controller) Close() {
	c.detach()
	c.vehicle = nil
	c.chassis = nil
}

func (c *Controller) detach() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) observe(s actuation.VelocitySample) {
	switch tr := c.jumps.Observe(s); tr {
	case jump.Landed, jump.LiftedOff:
		c.log.Debug("ground contact changed",
			zap.Stringer("transition", tr),
			zap.Float64("vy", s.VY))
	}
}

// KeyDown records a key press.
func (c *Controller) KeyDown(key string) {
	c.tracker.KeyDown(key)
}

// KeyUp records a key release.
func (c *Controller) KeyUp(key string) {
	c.tracker.KeyUp(key)
}

// Apply records one event from an input source.
func (c *Controller) Apply(ev controls.Event) {
	c.tracker.Apply(ev)
}

// Tick runs one mapping pass against the latest snapshot and issues the
// resulting commands. While either port is missing the pass is skipped and
// nil is returned.
func (c *Controller) Tick() []actuation.Command {
	if c.vehicle == nil || c.chassis == nil {
		return nil
	}
	cmds := c.mapper.Map(c.tracker.Snapshot(), c.jumps)
	actuation.Dispatch(cmds, c.vehicle, c.chassis)
	return cmds
}

func (c *Controller) Snapshot() controls.State {
	return c.tracker.Snapshot()
}

func (c *Controller) JumpState() jump.State {
	return c.jumps.State()
}

// JumpsRemaining returns how many jumps are left before the next landing.
func (c *Controller) JumpsRemaining() int {
	return c.jumps.Remaining()
}

// Attached reports whether both ports are set.
func (c *Controller) Attached() bool {
	return c.vehicle != nil && c.chassis != nil
}
