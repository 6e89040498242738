// Command lvlc compiles Tiled maps into binary level files and inspects
// compiled levels.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/pupu/collision"
	"github.com/automoto/pupu/logger"
	"github.com/automoto/pupu/shared/leveldata"
	"github.com/sirupsen/logrus"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	logger.Init()

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "compile":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "Usage: lvlc compile <map.tmx|maps-dir> <out.lvl|out-dir>")
			os.Exit(1)
		}
		os.Exit(runCompile(args[0], args[1]))
	case "stats":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: lvlc stats <level.lvl|map.tmx>")
			os.Exit(1)
		}
		os.Exit(runStats(args[0]))
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: lvlc <command> <args>

Commands:
  compile <map.tmx> <out.lvl>      Compile one Tiled map
  compile <maps-dir> <out-dir>     Compile every .tmx map in a directory
  stats   <level.lvl|map.tmx>      Show record counts and hit-map size`)
}

func runCompile(in, out string) int {
	info, err := os.Stat(in)
	if err != nil {
		logger.Log.WithError(err).Error("Cannot read input")
		return 1
	}

	if !info.IsDir() {
		level, err := leveldata.LoadTMX(os.DirFS(filepath.Dir(in)), filepath.Base(in))
		if err != nil {
			logger.Log.WithError(err).Error("Compile failed")
			return 1
		}
		if err := writeLevel(out, level); err != nil {
			logger.Log.WithError(err).Error("Write failed")
			return 1
		}
		return 0
	}

	levels, names, err := leveldata.LoadAllTMX(os.DirFS(in), ".")
	if err != nil {
		logger.Log.WithError(err).Error("Compile failed")
		return 1
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		logger.Log.WithError(err).Error("Cannot create output directory")
		return 1
	}

	failed := 0
	for _, name := range names {
		dst := filepath.Join(out, name+".lvl")
		if err := writeLevel(dst, levels[name]); err != nil {
			logger.Log.WithError(err).WithField("level", name).Error("Write failed")
			failed++
		}
	}
	if failed > 0 {
		return 1
	}
	return 0
}

func writeLevel(path string, level *leveldata.Level) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := leveldata.Encode(w, level); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	logger.Log.WithFields(logrus.Fields{
		"out":    path,
		"width":  level.Width,
		"height": level.Height,
		"tiles":  level.TileCount(),
	}).Info("Level compiled")
	return nil
}

func runStats(path string) int {
	fsys, name := os.DirFS(filepath.Dir(path)), filepath.Base(path)

	var level *leveldata.Level
	var err error
	if strings.EqualFold(filepath.Ext(name), ".tmx") {
		level, err = leveldata.LoadTMX(fsys, name)
	} else {
		level, err = leveldata.Load(fsys, name)
	}
	if err != nil {
		logger.Log.WithError(err).Error("Load failed")
		return 1
	}

	counts := make(map[leveldata.TileSource]int)
	for _, list := range [][]leveldata.Tile{level.Walls, level.Boxes, level.Actors} {
		for _, t := range list {
			counts[t.Source]++
		}
	}

	m := collision.NewMap(collision.DefaultConfig())
	m.LoadLevel(level)
	w, h := m.Size()
	b := m.Bounds()

	fmt.Printf("%s: %dx%d tiles, background %d\n", path, level.Width, level.Height, level.Background)
	fmt.Printf("  hit-map %dx%d, %.0fx%.0f px at scale %d\n", w, h, b.W, b.H, m.Config().PixelSize)
	for s := leveldata.TileSource(0); s.Valid(); s++ {
		if n := counts[s]; n > 0 {
			fmt.Printf("  %-16s %d\n", s, n)
		}
	}
	if _, ok := level.Spawn(); !ok {
		fmt.Println("  warning: no character spawn")
	}
	return 0
}
