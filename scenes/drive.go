package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/jumpcar/components"
	cfg "github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/shared/leveldata"
	"github.com/automoto/jumpcar/systems"
	"github.com/automoto/jumpcar/systems/factory"
	"github.com/automoto/jumpcar/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// DriveScene is a single vehicle in an arena.
type DriveScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	log          *zap.Logger
	level        string
	once         sync.Once
}

func NewDriveScene(sc SceneChanger, level string, log *zap.Logger) *DriveScene {
	return &DriveScene{sceneChanger: sc, level: level, log: log}
}

func (ds *DriveScene) Update() {
	ds.once.Do(ds.configure)
	ds.ecs.Update()
}

func (ds *DriveScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ds.ecs == nil {
		return
	}
	ds.ecs.Draw(screen)
}

// Close detaches every controller from its chassis.
func (ds *DriveScene) Close() {
	if ds.ecs == nil {
		return
	}
	tags.Vehicle.Each(ds.ecs.World, func(entry *donburi.Entry) {
		components.Vehicle.Get(entry).Controller.Close()
	})
}

func (ds *DriveScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input first so this tick's keys reach the controllers before they map.
	ecs.AddSystem(systems.UpdateKeyboard)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateControls)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdatePulses)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawPulses)
	ecs.AddRenderer(cfg.Default, systems.DrawVehicle)
	ecs.AddRenderer(cfg.HUD, systems.DrawHUD)
	ecs.AddRenderer(cfg.HUD, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawFPS)

	ds.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(ds.ecs, ds.level)
	arena := components.Level.Get(level).Arena

	// Now create the collision space using the arena's dimensions.
	factory.CreateWalls(ds.ecs, arena)
	for _, w := range arena.Walls {
		factory.CreateWall(ds.ecs, w)
	}

	settings := systems.GetOrCreateSettings(ds.ecs)
	systems.ApplySavedSettings(settings, systems.LoadSettings())
	factory.CreateKeyboard(ds.ecs)

	spawn := arena.Spawn
	if !arena.HasSpawn {
		ds.log.Warn("arena has no VehicleSpawn; using the reset position", zap.String("arena", arena.Name))
		rp := cfg.Drive.ResetPosition
		spawn = leveldata.Spawn{X: rp.X(), Z: rp.Z()}
	}
	factory.CreateVehicle(ds.ecs, spawn, ds.log)

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ds.ecs,
		(spawn.X-arena.MinX)*arena.PixelsPerMetre,
		(spawn.Z-arena.MinZ)*arena.PixelsPerMetre,
	)

	ds.log.Info("arena loaded",
		zap.String("arena", arena.Name),
		zap.Int("walls", len(arena.Walls)),
		zap.Float64("width", arena.Width),
		zap.Float64("depth", arena.Depth),
	)
}
