package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/automoto/pupu/assets"
	"github.com/automoto/pupu/config"
	"github.com/automoto/pupu/fonts"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/scenes"
	"github.com/automoto/pupu/systems"
	"github.com/automoto/pupu/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	levelPath := flag.String("level", "", "level file (.lvl binary or .tmx)")
	configPath := flag.String("config", "", "YAML tuning overrides")
	assetDir := flag.String("assets", "assets/images", "directory of sprite sheet PNGs")
	debug := flag.Bool("debug", false, "show the collision overlay")
	flag.Parse()

	logger.Init()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			logger.Log.WithError(err).Fatal("Could not load config")
		}
	}
	if *debug {
		config.Debug.Overlay = true
		config.Debug.Hitboxes = true
	}

	if err := systems.InitPersistence(); err != nil {
		logger.Log.WithError(err).Warn("Could not initialize persistence")
	}

	path := *levelPath
	if path == "" {
		if saved, err := systems.LoadSession(); err != nil {
			logger.Log.WithError(err).Warn("Could not load saved session")
		} else if saved != nil && saved.LastLevel != "" {
			path = saved.LastLevel
		}
	}
	if path == "" {
		path = filepath.Join(config.C.LevelDir, "level1.tmx")
	}
	path = factory.ResolveLevelPath(path)

	if info, err := os.Stat(*assetDir); err == nil && info.IsDir() {
		systems.Assets = assets.NewRegistry(os.DirFS(*assetDir))
	}

	if err := fonts.LoadDefaults(); err != nil {
		logger.Log.WithError(err).Fatal("Could not load fonts")
	}

	scene, err := scenes.NewWorldScene(path)
	if err != nil {
		logger.Log.WithError(err).WithField("level", path).Fatal("Could not load level")
	}
	defer scene.Close()

	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	logger.Log.WithFields(logrus.Fields{
		"level": path,
		"tps":   config.C.TPS,
	}).Info("Starting")

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		logger.Log.WithError(err).Fatal("Game exited with error")
	}
}
