package controls

// Event is a single key transition from an input source.
type Event struct {
	Key  string
	Down bool
}

// Tracker folds key events into snapshots. The last applied event for a key
// wins; a key whose key-up never arrives (for example on window focus loss)
// stays held.
type Tracker struct {
	current State
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// KeyDown marks key as held and returns the new snapshot.
func (t *Tracker) KeyDown(key string) State {
	t.current = t.current.With(key, true)
	return t.current
}

// KeyUp marks key as released and returns the new snapshot.
func (t *Tracker) KeyUp(key string) State {
	t.current = t.current.With(key, false)
	return t.current
}

// Apply dispatches ev to KeyDown or KeyUp.
func (t *Tracker) Apply(ev Event) State {
	if ev.Down {
		return t.KeyDown(ev.Key)
	}
	return t.KeyUp(ev.Key)
}

// Snapshot returns the latest snapshot.
func (t *Tracker) Snapshot() State {
	return t.current
}
