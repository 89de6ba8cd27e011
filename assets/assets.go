// Package assets bundles the level files shipped with the game.
package assets

import (
	"embed"
	"fmt"
	"sync"

	"github.com/automoto/layerhop/level"
	"github.com/automoto/layerhop/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

// LevelLoader parses the embedded levels once and builds a fresh
// level.Level per request.
type LevelLoader struct {
	once   sync.Once
	levels map[string]*leveldata.LevelData
	names  []string
	err    error
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

func (l *LevelLoader) load() {
	l.once.Do(func() {
		l.levels, l.names, l.err = leveldata.LoadAllLevels(assetFS, levelsDir)
	})
}

// Names lists the embedded levels in play order.
func (l *LevelLoader) Names() ([]string, error) {
	l.load()
	return l.names, l.err
}

func (l *LevelLoader) LoadLevel(name string) (*level.Level, error) {
	l.load()
	if l.err != nil {
		return nil, l.err
	}
	data, ok := l.levels[name]
	if !ok {
		return nil, fmt.Errorf("level %q not found", name)
	}
	return level.New(data), nil
}

func (l *LevelLoader) MustLoadLevel(name string) *level.Level {
	lvl, err := l.LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return lvl
}

// Next returns the level after name, wrapping to the first.
func (l *LevelLoader) Next(name string) string {
	names, err := l.Names()
	if err != nil || len(names) == 0 {
		return name
	}
	for i, n := range names {
		if n == name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

var levelLoader = NewLevelLoader()

func LevelNames() ([]string, error) {
	return levelLoader.Names()
}

func LoadLevel(name string) (*level.Level, error) {
	return levelLoader.LoadLevel(name)
}

func MustLoadLevel(name string) *level.Level {
	return levelLoader.MustLoadLevel(name)
}

func NextLevel(name string) string {
	return levelLoader.Next(name)
}
