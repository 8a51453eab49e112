package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// LoadLevel parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS. Pixel coordinates are divided by pixelsPerUnit.
func LoadLevel(fsys fs.FS, tmxPath string, pixelsPerUnit float64) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	unit := func(px float64) float64 { return px / pixelsPerUnit }

	level := &Level{
		Name:        strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:       unit(float64(levelMap.Width * levelMap.TileWidth)),
		Depth:       unit(float64(levelMap.Height * levelMap.TileHeight)),
		SearchPaths: make(map[string]SearchPath),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Walls":
			for _, o := range og.Objects {
				level.Walls = append(level.Walls, Wall{
					X:     unit(o.X),
					Z:     unit(o.Y),
					Width: unit(o.Width),
					Depth: unit(o.Height),
				})
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.PlayerSpawns = append(level.PlayerSpawns, math.Vec2{X: unit(o.X), Y: unit(o.Y)})
			}
		case "EnemySpawn":
			for _, o := range og.Objects {
				level.EnemySpawns = append(level.EnemySpawns, EnemySpawn{
					Position:   math.Vec2{X: unit(o.X), Y: unit(o.Y)},
					SearchPath: o.Properties.GetString("searchPath"),
				})
			}
		case "SearchPaths":
			for _, o := range og.Objects {
				if len(o.PolyLines) == 0 {
					continue
				}
				// Use the first polyline if multiple polylines exist
				polyline := o.PolyLines[0]
				if polyline.Points == nil || len(*polyline.Points) == 0 {
					continue
				}
				points := make([]math.Vec2, len(*polyline.Points))
				for i, point := range *polyline.Points {
					points[i] = math.Vec2{
						X: unit(o.X + point.X),
						Y: unit(o.Y + point.Y),
					}
				}
				level.SearchPaths[o.Name] = SearchPath{
					Name:   o.Name,
					Points: points,
					Height: o.Properties.GetFloat("height"),
				}
			}
		}
	}

	for _, spawn := range level.EnemySpawns {
		if spawn.SearchPath == "" {
			continue
		}
		if _, ok := level.SearchPaths[spawn.SearchPath]; !ok {
			return nil, fmt.Errorf("%s: enemy spawn at (%.1f, %.1f) uses %q: %w",
				tmxPath, spawn.Position.X, spawn.Position.Y, spawn.SearchPath, ErrUnknownSearchPath)
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads each,
// and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string, pixelsPerUnit float64) (map[string]*Level, []string, error) {
	pattern := path.Join(levelsDir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("%s: %w", levelsDir, ErrNoLevels)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, match := range matches {
		level, err := LoadLevel(fsys, match, pixelsPerUnit)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", match, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
