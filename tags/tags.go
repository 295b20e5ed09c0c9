package tags

import "github.com/yohamta/donburi"

var (
	Vehicle = donburi.NewTag().SetName("Vehicle")
	Wall    = donburi.NewTag().SetName("Wall")
	Pulse   = donburi.NewTag().SetName("Pulse")
)
