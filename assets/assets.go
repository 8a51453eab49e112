// Package assets embeds the hunt levels.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/automoto/kamatayan/config"
	"github.com/automoto/kamatayan/shared/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

var (
	ErrNoLevels          = leveldata.ErrNoLevels
	ErrUnknownSearchPath = leveldata.ErrUnknownSearchPath
)

type Level = leveldata.Level

// LevelLoader reads levels from a file system, embedded by default.
type LevelLoader struct {
	fsys          fs.FS
	dir           string
	pixelsPerUnit float64
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{
		fsys:          assetFS,
		dir:           "levels",
		pixelsPerUnit: config.Level.PixelsPerUnit,
	}
}

// NewDirLevelLoader reads .tmx files from a directory on disk.
func NewDirLevelLoader(dir string) *LevelLoader {
	return &LevelLoader{
		fsys:          os.DirFS(dir),
		dir:           ".",
		pixelsPerUnit: config.Level.PixelsPerUnit,
	}
}

// LoadLevels returns every level keyed by name plus the sorted names.
func (l *LevelLoader) LoadLevels() (map[string]*Level, []string, error) {
	return leveldata.LoadAllLevels(l.fsys, l.dir, l.pixelsPerUnit)
}

// LoadLevel loads one level by name, without the .tmx extension.
func (l *LevelLoader) LoadLevel(name string) (*Level, error) {
	tmx := path.Join(l.dir, name+".tmx")
	if _, err := fs.Stat(l.fsys, tmx); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, ErrNoLevels)
	}
	return leveldata.LoadLevel(l.fsys, tmx, l.pixelsPerUnit)
}

func (l *LevelLoader) MustLoadLevels() map[string]*Level {
	levels, _, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels
}

func (l *LevelLoader) MustLoadLevel(name string) *Level {
	level, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
