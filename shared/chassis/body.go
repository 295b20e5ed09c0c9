// Package chassis is a small rigid-body stand-in for a raycast vehicle. It
// implements both actuation ports so the controls can be driven without a
// full physics engine: a box on four wheels over a flat ground plane, with
// optional arena walls.
package chassis

import (
	"fmt"
	"math"
	"slices"

	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

const wheelCount = 4

// Config holds the body constants.
type Config struct {
	Mass           float64    `yaml:"mass"`
	Inertia        float64    `yaml:"inertia"`    // scalar moment of inertia
	Gravity        float64    `yaml:"gravity"`    // signed, along Y
	RideHeight     float64    `yaml:"rideHeight"` // Y of the centre of mass when resting on the ground
	WheelBase      float64    `yaml:"wheelBase"`
	Restitution    float64    `yaml:"restitution"`    // fraction of downward speed kept on ground impact
	SettleSpeed    float64    `yaml:"settleSpeed"`    // bounce speeds below this are dropped
	Grip           float64    `yaml:"grip"`           // per second, lateral velocity removed while grounded
	RollingDrag    float64    `yaml:"rollingDrag"`    // per second, horizontal velocity decay while grounded
	CoastFriction  float64    `yaml:"coastFriction"`  // m/s², slows a grounded body with no throttle
	AngularDamping float64    `yaml:"angularDamping"` // per second
	Uprighting     float64    `yaml:"uprighting"`     // per second, pitch and roll decay while grounded
	HalfExtents    mgl64.Vec3 `yaml:"halfExtents"`
}

func DefaultConfig() Config {
	return Config{
		Mass:           150,
		Inertia:        60,
		Gravity:        -9.81,
		RideHeight:     0.5,
		WheelBase:      1.6,
		Restitution:    0.1,
		SettleSpeed:    0.05,
		Grip:           6,
		RollingDrag:    0.4,
		CoastFriction:  0.5,
		AngularDamping: 0.8,
		Uprighting:     4,
		HalfExtents:    mgl64.Vec3{0.6, 0.3, 1.0},
	}
}

type subscriber struct {
	id int
	fn func(actuation.VelocitySample)
}

// Body is the vehicle chassis. Not safe for concurrent use.
type Body struct {
	cfg Config

	pos    mgl64.Vec3
	vel    mgl64.Vec3
	angVel mgl64.Vec3
	rot    mgl64.Vec3 // Euler XYZ, radians

	engine [wheelCount]float64
	steer  [wheelCount]float64

	walls *Walls

	subs   []subscriber
	nextID int
}

// New places a body at pos, at rest.
func New(cfg Config, pos mgl64.Vec3) *Body {
	return &Body{cfg: cfg, pos: pos}
}

// SetWalls attaches arena walls; nil removes them.
func (b *Body) SetWalls(w *Walls) {
	b.walls = w
	if w != nil {
		w.Sync(b.pos)
	}
}

func (b *Body) Pos() mgl64.Vec3    { return b.pos }
func (b *Body) Vel() mgl64.Vec3    { return b.vel }
func (b *Body) AngVel() mgl64.Vec3 { return b.angVel }
func (b *Body) Rot() mgl64.Vec3    { return b.rot }
func (b *Body) Config() Config     { return b.cfg }

// Heading is the yaw angle in radians.
func (b *Body) Heading() float64 { return b.rot.Y() }

// Forward is the horizontal unit vector the nose points at. At zero yaw the
// nose points down -Z.
func (b *Body) Forward() mgl64.Vec3 {
	yaw := b.rot.Y()
	return mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
}

// Grounded reports whether the wheels touch the ground plane.
func (b *Body) Grounded() bool {
	return b.pos.Y() <= b.cfg.RideHeight+1e-6
}

// Speed is the signed speed along Forward.
func (b *Body) Speed() float64 {
	return b.vel.Dot(b.Forward())
}

func (b *Body) EngineForce(wheel int) float64 { return b.engine[checkWheel(wheel)] }
func (b *Body) Steering(wheel int) float64    { return b.steer[checkWheel(wheel)] }

func (b *Body) orientation() mgl64.Quat {
	return mgl64.AnglesToQuat(b.rot.X(), b.rot.Y(), b.rot.Z(), mgl64.XYZ)
}

// Step advances the body by dt seconds and then publishes the new linear
// velocity to every subscriber.
func (b *Body) Step(dt float64) {
	if dt <= 0 {
		return
	}
	if b.Grounded() {
		b.drive(dt)
	}

	b.vel[1] += b.cfg.Gravity * dt

	b.angVel = mgl64.Vec3{
		gamemath.Damp(b.angVel.X(), b.cfg.AngularDamping, dt),
		b.angVel.Y(),
		gamemath.Damp(b.angVel.Z(), b.cfg.AngularDamping, dt),
	}

	b.move(dt)
	b.rot = b.rot.Add(b.angVel.Mul(dt))
	b.rot[1] = wrapAngle(b.rot.Y())
	b.land()

	b.publish()
}

// drive applies wheel forces, steering and ground friction.
func (b *Body) drive(dt float64) {
	fwd := b.Forward()
	force := b.engine[2] + b.engine[3]
	b.vel = b.vel.Add(fwd.Mul(force / b.cfg.Mass * dt))

	speed := b.Speed()
	front := (b.steer[2] + b.steer[3]) / 2
	rear := (b.steer[0] + b.steer[1]) / 2
	b.angVel[1] = speed * (math.Tan(front) - math.Tan(rear)) / b.cfg.WheelBase

	// Lateral grip keeps the car from sliding sideways.
	horiz := mgl64.Vec3{b.vel.X(), 0, b.vel.Z()}
	lateral := horiz.Sub(fwd.Mul(speed))
	keep := math.Exp(-b.cfg.Grip * dt)
	b.vel = b.vel.Sub(lateral.Mul(1 - keep))

	b.vel[0] = gamemath.Damp(b.vel.X(), b.cfg.RollingDrag, dt)
	b.vel[2] = gamemath.Damp(b.vel.Z(), b.cfg.RollingDrag, dt)
	if force == 0 {
		b.vel[0] = gamemath.ApproachZero(b.vel.X(), b.cfg.CoastFriction*dt)
		b.vel[2] = gamemath.ApproachZero(b.vel.Z(), b.cfg.CoastFriction*dt)
	}

	b.rot[0] = gamemath.Damp(b.rot.X(), b.cfg.Uprighting, dt)
	b.rot[2] = gamemath.Damp(b.rot.Z(), b.cfg.Uprighting, dt)
}

func (b *Body) move(dt float64) {
	d := b.vel.Mul(dt)
	if b.walls != nil {
		var blockedX, blockedZ bool
		d, blockedX, blockedZ = b.walls.Move(b.pos, d)
		if blockedX {
			b.vel[0] = 0
		}
		if blockedZ {
			b.vel[2] = 0
		}
	}
	b.pos = b.pos.Add(d)
}

// land keeps the body on or above the ground plane.
func (b *Body) land() {
	if b.pos.Y() >= b.cfg.RideHeight {
		return
	}
	b.pos[1] = b.cfg.RideHeight
	if b.vel.Y() < 0 {
		b.vel[1] = gamemath.SnapSmall(-b.vel.Y()*b.cfg.Restitution, b.cfg.SettleSpeed)
	}
}

// publish delivers to the subscribers present when it starts. A callback may
// unsubscribe itself or others without disturbing the current delivery.
func (b *Body) publish() {
	s := actuation.SampleOf(b.vel)
	for _, sub := range slices.Clone(b.subs) {
		sub.fn(s)
	}
}

// ApplyEngineForce implements actuation.VehiclePort.
func (b *Body) ApplyEngineForce(force float64, wheelIndex int) {
	b.engine[checkWheel(wheelIndex)] = force
}

// SetSteeringValue implements actuation.VehiclePort.
func (b *Body) SetSteeringValue(angle float64, wheelIndex int) {
	b.steer[checkWheel(wheelIndex)] = angle
}

// ApplyLocalImpulse implements actuation.ChassisPort.
func (b *Body) ApplyLocalImpulse(impulse, relativePoint mgl64.Vec3) {
	q := b.orientation()
	b.ApplyImpulse(q.Rotate(impulse), q.Rotate(relativePoint))
}

// ApplyImpulse implements actuation.ChassisPort.
func (b *Body) ApplyImpulse(impulse, relativePoint mgl64.Vec3) {
	b.vel = b.vel.Add(impulse.Mul(1 / b.cfg.Mass))
	b.angVel = b.angVel.Add(relativePoint.Cross(impulse).Mul(1 / b.cfg.Inertia))
}

func (b *Body) Position() actuation.PoseAccessor {
	return pose{v: &b.pos, after: b.syncWalls}
}

func (b *Body) Velocity() actuation.PoseAccessor {
	return pose{v: &b.vel}
}

func (b *Body) AngularVelocity() actuation.PoseAccessor {
	return pose{v: &b.angVel}
}

func (b *Body) Rotation() actuation.PoseAccessor {
	return pose{v: &b.rot}
}

// SubscribeVelocity implements actuation.ChassisPort.
func (b *Body) SubscribeVelocity(fn func(actuation.VelocitySample)) func() {
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	return func() {
		b.subs = slices.DeleteFunc(slices.Clone(b.subs), func(s subscriber) bool {
			return s.id == id
		})
	}
}

// Subscribers returns the number of live velocity subscriptions.
func (b *Body) Subscribers() int {
	return len(b.subs)
}

func (b *Body) syncWalls() {
	if b.walls != nil {
		b.walls.Sync(b.pos)
	}
}

type pose struct {
	v     *mgl64.Vec3
	after func()
}

func (p pose) Set(x, y, z float64) {
	*p.v = mgl64.Vec3{x, y, z}
	if p.after != nil {
		p.after()
	}
}

func checkWheel(i int) int {
	if i < 0 || i >= wheelCount {
		panic(fmt.Sprintf("chassis: wheel index %d out of range [0,%d)", i, wheelCount))
	}
	return i
}

func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}

var (
	_ actuation.VehiclePort = (*Body)(nil)
	_ actuation.ChassisPort = (*Body)(nil)
)
