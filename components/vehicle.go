package components

import (
	"github.com/automoto/jumpcar/shared/actuation"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/drive"
	"github.com/yohamta/donburi"
)

// VehicleData pairs a controller with the body it drives.
type VehicleData struct {
	Controller *drive.Controller
	Body       *chassis.Body

	// LastCommands is what the controller issued on the most recent tick.
	LastCommands []actuation.Command
}

var Vehicle = donburi.NewComponentType[VehicleData]()
