// Package actuation defines the contract between the control mapper and the
// physics subsystem: the commands the mapper may issue and the ports that
// execute them.
package actuation

import "github.com/go-gl/mathgl/mgl64"

// Vec3 is the vector type used on both sides of the ports.
type Vec3 = mgl64.Vec3

// VelocitySample is one linear velocity reading published after a physics step.
type VelocitySample struct {
	VX, VY, VZ float64
}

// SampleOf converts a velocity vector into a sample.
func SampleOf(v Vec3) VelocitySample {
	return VelocitySample{VX: v.X(), VY: v.Y(), VZ: v.Z()}
}

// VehiclePort drives the wheels. Wheel indices 0..3; 2 and 3 receive torque
// and primary steering, 0 and 1 are counter-steered.
type VehiclePort interface {
	ApplyEngineForce(force float64, wheelIndex int)
	SetSteeringValue(angle float64, wheelIndex int)
}

// PoseAccessor sets one absolute pose quantity.
type PoseAccessor interface {
	Set(x, y, z float64)
}

// ChassisPort is the rigid body of the vehicle.
type ChassisPort interface {
	// ApplyLocalImpulse applies impulse in body space at relativePoint (body space).
	ApplyLocalImpulse(impulse, relativePoint Vec3)
	// ApplyImpulse applies impulse in world space at relativePoint (world
	// space, relative to the centre of mass).
	ApplyImpulse(impulse, relativePoint Vec3)

	Position() PoseAccessor
	Velocity() PoseAccessor
	AngularVelocity() PoseAccessor
	Rotation() PoseAccessor

	// SubscribeVelocity delivers a sample after every physics step until the
	// returned function is called. The returned function is safe to call
	// more than once.
	SubscribeVelocity(fn func(VelocitySample)) (unsubscribe func())
}
