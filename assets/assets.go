package assets

import (
	"embed"

	"github.com/automoto/jumpcar/shared/leveldata"
)

// LevelsDir is the embedded directory holding the arena maps.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// MustLoadArenas loads every embedded arena, panicking if none parse.
func MustLoadArenas() (map[string]*leveldata.Arena, []string) {
	arenas, names, err := leveldata.LoadAllArenas(assetFS, LevelsDir)
	if err != nil {
		panic(err)
	}
	return arenas, names
}
