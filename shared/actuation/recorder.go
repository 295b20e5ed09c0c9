package actuation

import "fmt"

// Recorder is an in-memory implementation of both ports that logs every call.
// Tests use it in place of a physics body.
type Recorder struct {
	Calls []string

	subs   map[int]func(VelocitySample)
	nextID int
}

func NewRecorder() *Recorder {
	return &Recorder{subs: make(map[int]func(VelocitySample))}
}

func (r *Recorder) ApplyEngineForce(force float64, wheelIndex int) {
	r.Calls = append(r.Calls, fmt.Sprintf("applyEngineForce(%g, %d)", force, wheelIndex))
}

func (r *Recorder) SetSteeringValue(angle float64, wheelIndex int) {
	r.Calls = append(r.Calls, fmt.Sprintf("setSteeringValue(%g, %d)", angle, wheelIndex))
}

func (r *Recorder) ApplyLocalImpulse(impulse, relativePoint Vec3) {
	r.Calls = append(r.Calls, fmt.Sprintf("applyLocalImpulse(%s, %s)", vecString(impulse), vecString(relativePoint)))
}

func (r *Recorder) ApplyImpulse(impulse, relativePoint Vec3) {
	r.Calls = append(r.Calls, fmt.Sprintf("applyImpulse(%s, %s)", vecString(impulse), vecString(relativePoint)))
}

func (r *Recorder) Position() PoseAccessor        { return recordedPose{r, "position"} }
func (r *Recorder) Velocity() PoseAccessor        { return recordedPose{r, "velocity"} }
func (r *Recorder) AngularVelocity() PoseAccessor { return recordedPose{r, "angularVelocity"} }
func (r *Recorder) Rotation() PoseAccessor        { return recordedPose{r, "rotation"} }

func (r *Recorder) SubscribeVelocity(fn func(VelocitySample)) func() {
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	return func() { delete(r.subs, id) }
}

// Publish delivers s to every live subscriber.
func (r *Recorder) Publish(s VelocitySample) {
	for _, fn := range r.subs {
		fn(s)
	}
}

// Subscribers returns the number of live subscriptions.
func (r *Recorder) Subscribers() int {
	return len(r.subs)
}

type recordedPose struct {
	r    *Recorder
	name string
}

func (p recordedPose) Set(x, y, z float64) {
	p.r.Calls = append(p.r.Calls, fmt.Sprintf("%s.set(%g, %g, %g)", p.name, x, y, z))
}
