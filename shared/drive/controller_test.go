package drive

import (
	"testing"

	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/controls"
)

func attachedController() (*Controller, *actuation.Recorder) {
	c := NewController(DefaultOptions())
	rec := actuation.NewRecorder()
	c.Attach(rec, rec)
	return c, rec
}

func countImpulses(cmds []actuation.Command) int {
	n := 0
	for _, c := range cmds {
		if _, ok := c.(actuation.ApplyImpulse); ok {
			n++
		}
	}
	return n
}

func TestTickSkippedWithoutPorts(t *testing.T) {
	c := NewController(DefaultOptions())
	c.KeyDown("w")
	if cmds := c.Tick(); cmds != nil {
		t.Fatalf("Tick without ports issued %v", actuation.Strings(cmds))
	}

	rec := actuation.NewRecorder()
	c.Attach(rec, nil)
	if cmds := c.Tick(); cmds != nil {
		t.Fatalf("Tick with only the vehicle port issued %v", actuation.Strings(cmds))
	}
	if len(rec.Calls) != 0 {
		t.Errorf("vehicle port was called: %q", rec.Calls)
	}
}

func TestNilPointerPortsCountAsMissing(t *testing.T) {
	c := NewController(DefaultOptions())
	c.KeyDown("w")

	var nilRec *actuation.Recorder
	c.Attach(nilRec, nilRec)
	if c.Attached() {
		t.Fatal("nil pointer ports reported as attached")
	}
	if cmds := c.Tick(); cmds != nil {
		t.Fatalf("Tick with nil pointer ports issued %v", actuation.Strings(cmds))
	}

	rec := actuation.NewRecorder()
	c.Attach(rec, nilRec)
	if cmds := c.Tick(); cmds != nil {
		t.Fatalf("Tick with a nil pointer chassis issued %v", actuation.Strings(cmds))
	}
	if len(rec.Calls) != 0 || rec.Subscribers() != 0 {
		t.Errorf("vehicle port used: calls %q, subscribers %d", rec.Calls, rec.Subscribers())
	}
	c.Close()
}

func TestTickDispatchesToPorts(t *testing.T) {
	c, rec := attachedController()
	c.KeyDown("W")

	cmds := c.Tick()
	if len(cmds) != 6 {
		t.Fatalf("got %d commands, want 6: %q", len(cmds), actuation.Strings(cmds))
	}
	if rec.Calls[0] != "applyEngineForce(150, 2)" || rec.Calls[1] != "applyEngineForce(150, 3)" {
		t.Errorf("engine calls %q", rec.Calls[:2])
	}
}

func TestDoubleJumpScenario(t *testing.T) {
	c, rec := attachedController()
	rec.Publish(actuation.VelocitySample{VY: 0})
	if !c.JumpState().Grounded {
		t.Fatal("controller did not land on a resting sample")
	}

	c.KeyDown(" ")
	if n := countImpulses(c.Tick()); n != 1 {
		t.Fatalf("first jump: %d impulses", n)
	}
	rec.Publish(actuation.VelocitySample{VY: 1.3})
	if n := countImpulses(c.Tick()); n != 1 {
		t.Fatalf("second jump: %d impulses", n)
	}
	if n := countImpulses(c.Tick()); n != 0 {
		t.Fatalf("third jump before landing: %d impulses", n)
	}
	if got := c.JumpState().ConsumedJumps; got != 2 {
		t.Fatalf("consumed = %d, want 2", got)
	}

	rec.Publish(actuation.VelocitySample{VY: 0.15})
	if n := countImpulses(c.Tick()); n != 0 {
		t.Fatal("dead-band sample refilled the jump budget")
	}

	rec.Publish(actuation.VelocitySample{VY: 0.05})
	if c.JumpsRemaining() != 2 {
		t.Fatalf("after landing %d jumps remaining, want 2", c.JumpsRemaining())
	}
	if n := countImpulses(c.Tick()); n != 1 {
		t.Fatalf("jump after landing: %d impulses", n)
	}
}

func TestLandingVisibleSameStep(t *testing.T) {
	c, rec := attachedController()
	c.KeyDown(" ")
	c.Tick()
	c.Tick()
	if countImpulses(c.Tick()) != 0 {
		t.Fatal("budget should be exhausted")
	}

	rec.Publish(actuation.VelocitySample{VY: 0.01})
	if countImpulses(c.Tick()) != 1 {
		t.Error("landing published before the pass was not visible to the jump gate")
	}
}

func TestCloseUnsubscribes(t *testing.T) {
	c, rec := attachedController()
	if rec.Subscribers() != 1 {
		t.Fatalf("Subscribers() = %d after Attach", rec.Subscribers())
	}
	c.Close()
	c.Close()
	if rec.Subscribers() != 0 {
		t.Fatalf("Subscribers() = %d after Close", rec.Subscribers())
	}
	rec.Publish(actuation.VelocitySample{VY: 0})
	if c.JumpState().Grounded {
		t.Error("sample delivered after Close")
	}
	if c.Tick() != nil {
		t.Error("Tick after Close should skip the pass")
	}
	if c.Attached() {
		t.Error("Attached() true after Close")
	}
}

func TestReattachReplacesSubscription(t *testing.T) {
	c, first := attachedController()
	second := actuation.NewRecorder()
	c.Attach(second, second)

	if first.Subscribers() != 0 {
		t.Errorf("old chassis still has %d subscribers", first.Subscribers())
	}
	if second.Subscribers() != 1 {
		t.Errorf("new chassis has %d subscribers", second.Subscribers())
	}
}

func TestStuckKeyStaysHeld(t *testing.T) {
	c, _ := attachedController()
	c.Apply(controls.Event{Key: "w", Down: true})
	// key-up lost, e.g. the window lost focus
	for i := 0; i < 3; i++ {
		cmds := c.Tick()
		if cmds[0].String() != "SetEngineForce(150, 2)" {
			t.Fatalf("tick %d: %s", i, cmds[0])
		}
	}
	if !c.Snapshot().Held("w") {
		t.Error("stuck key was cleared")
	}
}
