package components

import (
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/yohamta/donburi"
)

// Walls is the arena collision space shared by every vehicle.
var Walls = donburi.NewComponentType[chassis.Walls]()
