package actuation

import "fmt"

// Command is one actuation instruction. The set of implementations is closed:
// SetEngineForce, SetSteering, ApplyLocalImpulse, ApplyImpulse and ResetPose.
type Command interface {
	apply(v VehiclePort, c ChassisPort)
	String() string
}

type SetEngineForce struct {
	Force float64
	Wheel int
}

type SetSteering struct {
	Angle float64
	Wheel int
}

type ApplyLocalImpulse struct {
	Impulse Vec3
	Point   Vec3
}

type ApplyImpulse struct {
	Impulse Vec3
	Point   Vec3
}

// ResetPose pins the chassis to an absolute pose.
type ResetPose struct {
	Position        Vec3
	Velocity        Vec3
	AngularVelocity Vec3
	Rotation        Vec3 // Euler angles, radians
}

func (c SetEngineForce) apply(v VehiclePort, _ ChassisPort) {
	v.ApplyEngineForce(c.Force, c.Wheel)
}

func (c SetSteering) apply(v VehiclePort, _ ChassisPort) {
	v.SetSteeringValue(c.Angle, c.Wheel)
}

func (c ApplyLocalImpulse) apply(_ VehiclePort, ch ChassisPort) {
	ch.ApplyLocalImpulse(c.Impulse, c.Point)
}

func (c ApplyImpulse) apply(_ VehiclePort, ch ChassisPort) {
	ch.ApplyImpulse(c.Impulse, c.Point)
}

func (c ResetPose) apply(_ VehiclePort, ch ChassisPort) {
	setPose(ch.Position(), "position", c.Position)
	setPose(ch.Velocity(), "velocity", c.Velocity)
	setPose(ch.AngularVelocity(), "angularVelocity", c.AngularVelocity)
	setPose(ch.Rotation(), "rotation", c.Rotation)
}

func setPose(acc PoseAccessor, name string, v Vec3) {
	if acc == nil {
		panic(fmt.Sprintf("actuation: chassis port has no %s accessor", name))
	}
	acc.Set(v.X(), v.Y(), v.Z())
}

func (c SetEngineForce) String() string {
	return fmt.Sprintf("SetEngineForce(%g, %d)", c.Force, c.Wheel)
}

func (c SetSteering) String() string {
	return fmt.Sprintf("SetSteering(%g, %d)", c.Angle, c.Wheel)
}

func (c ApplyLocalImpulse) String() string {
	return fmt.Sprintf("ApplyLocalImpulse(%s, %s)", vecString(c.Impulse), vecString(c.Point))
}

func (c ApplyImpulse) String() string {
	return fmt.Sprintf("ApplyImpulse(%s, %s)", vecString(c.Impulse), vecString(c.Point))
}

func (c ResetPose) String() string {
	return fmt.Sprintf("ResetPose(%s, %s, %s, %s)",
		vecString(c.Position), vecString(c.Velocity), vecString(c.AngularVelocity), vecString(c.Rotation))
}

func vecString(v Vec3) string {
	return fmt.Sprintf("[%g,%g,%g]", v.X(), v.Y(), v.Z())
}

// Strings renders a command sequence, one entry per command.
func Strings(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}

// Dispatch issues cmds against the ports in order. Both ports must be non-nil;
// callers decide what to do when a port is not yet available.
func Dispatch(cmds []Command, v VehiclePort, c ChassisPort) {
	for _, cmd := range cmds {
		cmd.apply(v, c)
	}
}
