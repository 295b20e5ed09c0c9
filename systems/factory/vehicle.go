package factory

import (
	"github.com/automoto/jumpcar/archetypes"
	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/chassis"
	"github.com/automoto/jumpcar/shared/drive"
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// CreateVehicle spawns a body at the arena spawn point and attaches a fresh
// controller to it.
func CreateVehicle(ecs *ecs.ECS, spawn leveldata.Spawn, log *zap.Logger) *donburi.Entry {
	vehicle := archetypes.Vehicle.Spawn(ecs)

	body := chassis.New(cfg.Chassis, mgl64.Vec3{spawn.X, cfg.Chassis.RideHeight, spawn.Z})
	body.Rotation().Set(0, spawn.Heading, 0)
	if wallsEntry, ok := components.Walls.First(ecs.World); ok {
		body.SetWalls(components.Walls.Get(wallsEntry))
	}

	opts := cfg.Tuning().ControllerOptions()
	opts.Logger = log.With(zap.Int("entity", int(vehicle.Entity().Id())))
	ctrl := drive.NewController(opts)
	ctrl.Attach(body, body)

	components.Vehicle.SetValue(vehicle, components.VehicleData{
		Controller: ctrl,
		Body:       body,
	})

	return vehicle
}
