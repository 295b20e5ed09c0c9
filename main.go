package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/jumpcar/config"
	"github.com/automoto/jumpcar/fonts"
	"github.com/automoto/jumpcar/scenes"
	"github.com/automoto/jumpcar/shared/logging"
	"github.com/automoto/jumpcar/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene, closing the old one.
func (g *Game) ChangeScene(scene interface{}) {
	g.Close()
	g.scene = scene.(Scene)
}

// Close releases the current scene if it holds anything.
func (g *Game) Close() {
	if c, ok := g.scene.(interface{ Close() }); ok {
		c.Close()
	}
}

func NewGame(level string, log *zap.Logger) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewDriveScene(g, level, log)
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(config.Input.Quit) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "jumpcar.yaml", "YAML file overriding the vehicle constants")
	level := flag.String("level", config.C.Level, "Arena to load from assets/levels")
	logLevel := flag.String("log-level", "", "Log level override (debug, info, warn, error)")
	flag.Parse()

	// A missing config file is fine; anything else is fatal.
	configErr := config.LoadFile(*configPath)
	if configErr != nil && !errors.Is(configErr, fs.ErrNotExist) {
		log.Fatalf("Failed to load config: %v", configErr)
	}
	if *logLevel != "" {
		config.Logging.Level = *logLevel
	}

	logger, err := logging.Init(config.Logging)
	if err != nil {
		log.Fatalf("Failed to initialise logging: %v", err)
	}
	defer logging.Sync()
	if configErr != nil {
		logger.Debug("no config file, using defaults", zap.String("path", *configPath))
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		logger.Fatal("load fonts", zap.Error(err))
	}

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence; saved overlay toggles are applied by the scene
	if err := systems.InitPersistence(config.C.AppName); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}

	game := NewGame(*level, logger)
	defer game.Close()
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game exited", zap.Error(err))
	}
}
