// Package controls tracks which keys are currently held.
// It knows nothing about vehicles or physics: keys are plain identifier
// strings and any string is accepted.
package controls

import (
	"sort"
	"strings"
)

// State is an immutable snapshot of held keys.
// A key absent from the snapshot is not held.
type State struct {
	held map[string]bool
}

// Normalize returns the canonical form of a key identifier.
func Normalize(key string) string {
	return strings.ToLower(key)
}

// Held reports whether key was held when the snapshot was taken.
func (s State) Held(key string) bool {
	return s.held[Normalize(key)]
}

// With returns a copy of s with key set to held. s itself is not modified.
func (s State) With(key string, held bool) State {
	next := make(map[string]bool, len(s.held)+1)
	for k, v := range s.held {
		next[k] = v
	}
	next[Normalize(key)] = held
	return State{held: next}
}

// Pressed returns the held keys in sorted order.
func (s State) Pressed() []string {
	keys := make([]string, 0, len(s.held))
	for k, v := range s.held {
		if v {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Equal reports whether both snapshots agree on every key.
func (s State) Equal(other State) bool {
	for k, v := range s.held {
		if other.held[k] != v {
			return false
		}
	}
	for k, v := range other.held {
		if s.held[k] != v {
			return false
		}
	}
	return true
}

// Of builds a snapshot with the given keys held.
func Of(keys ...string) State {
	s := State{held: make(map[string]bool, len(keys))}
	for _, k := range keys {
		s.held[Normalize(k)] = true
	}
	return s
}
