package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// LoadArena parses a TMX file into an Arena. It takes an fs.FS so callers
// can pass embed.FS (game) or os.DirFS (tools).
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	var ppm float64
	if levelMap.Properties != nil {
		ppm = levelMap.Properties.GetFloat("pixelsPerMetre")
	}
	if ppm <= 0 {
		ppm = DefaultPixelsPerMetre
	}

	width := float64(levelMap.Width*levelMap.TileWidth) / ppm
	depth := float64(levelMap.Height*levelMap.TileHeight) / ppm
	a := &Arena{
		Name:           strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MinX:           -width / 2,
		MinZ:           -depth / 2,
		Width:          width,
		Depth:          depth,
		PixelsPerMetre: ppm,
	}

	toX := func(px float64) float64 { return px/ppm + a.MinX }
	toZ := func(px float64) float64 { return px/ppm + a.MinZ }

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				a.Walls = append(a.Walls, WallRect{
					X: toX(o.X),
					Z: toZ(o.Y),
					W: o.Width / ppm,
					D: o.Height / ppm,
				})
			}
		case "VehicleSpawn":
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			a.Spawn = Spawn{
				X:       toX(o.X),
				Z:       toZ(o.Y),
				Heading: o.Properties.GetFloat("heading"),
			}
			a.HasSpawn = true
		}
	}

	// Sort walls for a stable draw and collision order.
	sort.Slice(a.Walls, func(i, j int) bool {
		if a.Walls[i].Z != a.Walls[j].Z {
			return a.Walls[i].Z < a.Walls[j].Z
		}
		return a.Walls[i].X < a.Walls[j].X
	})

	return a, nil
}

// LoadAllArenas discovers all .tmx files in levelsDir within fsys, loads each,
// and returns them keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, levelsDir string) (map[string]*Arena, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		a, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
