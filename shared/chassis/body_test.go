package chassis

import (
	"math"
	"strings"
	"testing"

	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/go-gl/mathgl/mgl64"
)

const dt = 1.0 / 60

func restingBody() *Body {
	cfg := DefaultConfig()
	b := New(cfg, mgl64.Vec3{0, cfg.RideHeight, 0})
	for i := 0; i < 10; i++ {
		b.Step(dt)
	}
	return b
}

func TestSettlesOnGround(t *testing.T) {
	cfg := DefaultConfig()
	b := New(cfg, mgl64.Vec3{0, 3, 0})

	var last actuation.VelocitySample
	b.SubscribeVelocity(func(s actuation.VelocitySample) { last = s })

	for i := 0; i < 600; i++ {
		b.Step(dt)
	}
	if !b.Grounded() {
		t.Fatalf("body did not land, y = %g", b.Pos().Y())
	}
	if math.Abs(b.Pos().Y()-cfg.RideHeight) > 1e-9 {
		t.Errorf("resting height %g, want %g", b.Pos().Y(), cfg.RideHeight)
	}
	if math.Abs(last.VY) >= 0.1 {
		t.Errorf("resting vy = %g, want below the landing threshold", last.VY)
	}
}

func TestEngineDrivesForward(t *testing.T) {
	b := restingBody()
	b.ApplyEngineForce(150, 2)
	b.ApplyEngineForce(150, 3)
	for i := 0; i < 60; i++ {
		b.Step(dt)
	}
	if b.Speed() <= 0.5 {
		t.Fatalf("speed after 1s of throttle = %g", b.Speed())
	}
	if b.Pos().Z() >= 0 {
		t.Errorf("nose points down -Z but z = %g", b.Pos().Z())
	}
}

func TestSteeringTurnsLeft(t *testing.T) {
	b := restingBody()
	b.ApplyEngineForce(150, 2)
	b.ApplyEngineForce(150, 3)
	b.SetSteeringValue(0.35, 2)
	b.SetSteeringValue(0.35, 3)
	b.SetSteeringValue(-0.1, 0)
	b.SetSteeringValue(-0.1, 1)
	for i := 0; i < 90; i++ {
		b.Step(dt)
	}
	if b.Heading() <= 0 {
		t.Errorf("heading %g after steering left, want positive yaw", b.Heading())
	}
}

func TestJumpImpulseLiftsOff(t *testing.T) {
	b := restingBody()
	var samples []float64
	b.SubscribeVelocity(func(s actuation.VelocitySample) { samples = append(samples, s.VY) })

	b.ApplyImpulse(mgl64.Vec3{0, 200, 0}, mgl64.Vec3{})
	b.Step(dt)
	if b.Grounded() {
		t.Fatal("body still grounded after the jump impulse")
	}
	if samples[0] <= 0.2 {
		t.Errorf("first sample vy = %g, want above the liftoff threshold", samples[0])
	}

	for i := 0; i < 120; i++ {
		b.Step(dt)
	}
	if !b.Grounded() {
		t.Error("body did not come back down")
	}
}

func TestLocalImpulseTiltsNose(t *testing.T) {
	b := New(DefaultConfig(), mgl64.Vec3{0, 5, 0})
	b.ApplyLocalImpulse(mgl64.Vec3{0, -5, 0}, mgl64.Vec3{0, 0, -1})
	if b.AngVel().X() >= 0 {
		t.Errorf("pushing the nose down gave pitch rate %g, want negative", b.AngVel().X())
	}
	if b.Vel().Y() >= 0 {
		t.Errorf("downward impulse gave vy %g", b.Vel().Y())
	}
}

func TestPoseAccessors(t *testing.T) {
	b := restingBody()
	b.ApplyImpulse(mgl64.Vec3{30, 200, 0}, mgl64.Vec3{0, 0, 1})
	b.Step(dt)

	actuation.Dispatch([]actuation.Command{actuation.ResetPose{Position: mgl64.Vec3{-1.5, 0.5, 3}}}, b, b)

	if b.Pos() != (mgl64.Vec3{-1.5, 0.5, 3}) {
		t.Errorf("position %v", b.Pos())
	}
	zero := mgl64.Vec3{}
	if b.Vel() != zero || b.AngVel() != zero || b.Rot() != zero {
		t.Errorf("pose not cleared: vel %v ang %v rot %v", b.Vel(), b.AngVel(), b.Rot())
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := restingBody()
	n := 0
	unsubscribe := b.SubscribeVelocity(func(actuation.VelocitySample) { n++ })
	other := b.SubscribeVelocity(func(actuation.VelocitySample) {})

	b.Step(dt)
	unsubscribe()
	unsubscribe()
	b.Step(dt)

	if n != 1 {
		t.Errorf("delivered %d samples, want 1", n)
	}
	if b.Subscribers() != 1 {
		t.Errorf("Subscribers() = %d, want 1", b.Subscribers())
	}
	other()
	if b.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", b.Subscribers())
	}
}

func TestUnsubscribeDuringDelivery(t *testing.T) {
	b := restingBody()
	var got []string
	var unsubscribeA func()
	unsubscribeA = b.SubscribeVelocity(func(actuation.VelocitySample) {
		got = append(got, "a")
		unsubscribeA()
	})
	b.SubscribeVelocity(func(actuation.VelocitySample) { got = append(got, "b") })
	b.SubscribeVelocity(func(actuation.VelocitySample) { got = append(got, "c") })

	b.Step(dt)
	if strings.Join(got, "") != "abc" {
		t.Fatalf("first step delivered to %q, want a b c once each", got)
	}

	got = nil
	b.Step(dt)
	if strings.Join(got, "") != "bc" {
		t.Errorf("second step delivered to %q, want b c", got)
	}
	if b.Subscribers() != 2 {
		t.Errorf("Subscribers() = %d, want 2", b.Subscribers())
	}
}

func TestBadWheelIndexPanics(t *testing.T) {
	b := restingBody()
	defer func() {
		if recover() == nil {
			t.Fatal("wheel index 4 accepted")
		}
	}()
	b.ApplyEngineForce(1, 4)
}

func TestWallsBlockMovement(t *testing.T) {
	cfg := DefaultConfig()
	b := New(cfg, mgl64.Vec3{0, cfg.RideHeight, 0})
	// A wall two metres in front of the nose.
	walls := NewWalls(-10, -10, 20, 20, 16, 1, Rect{X: -5, Z: -3.5, W: 10, D: 1})
	b.SetWalls(walls)

	b.ApplyEngineForce(150, 2)
	b.ApplyEngineForce(150, 3)
	for i := 0; i < 600; i++ {
		b.Step(dt)
	}
	if b.Pos().Z() < -2.5-1e-6 {
		t.Errorf("body passed through the wall, z = %g", b.Pos().Z())
	}
	if b.Vel().Z() != 0 {
		t.Errorf("velocity into the wall %g, want 0", b.Vel().Z())
	}
}
