package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PulseKind int

const (
	PulseJump PulseKind = iota
	PulseReset
)

// PulseData is a short-lived ring drawn where the vehicle jumped or reset.
type PulseData struct {
	Kind  PulseKind
	X, Z  float64 // world metres
	Tween *gween.Tween
	Value float32 // 0..1 progress from the tween
	Done  bool
}

var Pulse = donburi.NewComponentType[PulseData]()
