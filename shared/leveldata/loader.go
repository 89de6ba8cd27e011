package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

const (
	layerPrefix     = "layer"
	spawnGroupName  = "Spawns"
	propKey         = "prop"
	slopeKey        = "slope"
	collidableKey   = "collidable"
	spawnLayerKey   = "layer"
	gravityKey      = "gravity"
	gravityAccelKey = "gravityAccel"
	keysKey         = "keys"
)

// LoadLevelData parses a TMX file. Tile layers named "layer0".."layerN" become
// depth layers; the "Spawns" object group supplies placements. It takes an
// fs.FS so callers can pass embed.FS (game) or os.DirFS (simulator, tests).
func LoadLevelData(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &LevelData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Cols:  levelMap.Width,
		Rows:  levelMap.Height,
		TileW: levelMap.TileWidth,
		TileH: levelMap.TileHeight,
	}

	if levelMap.Properties != nil {
		data.Gravity = levelMap.Properties.GetFloat(gravityKey)
		data.GravityAccel = levelMap.Properties.GetFloat(gravityAccelKey)
		data.Keys = levelMap.Properties.GetInt(keysKey)
	}

	byIndex := make(map[int][]TileData)
	maxIndex := -1
	for _, layer := range levelMap.Layers {
		index, ok := layerIndex(layer.Name)
		if !ok {
			continue
		}
		if _, dup := byIndex[index]; dup {
			return nil, fmt.Errorf("load TMX %s: duplicate tile layer %q", tmxPath, layer.Name)
		}

		tiles := []TileData{}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				td := TileData{Col: x, Row: y, Collidable: true}
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					td.Props = ParseProps(tilesetTile.Properties.GetString(propKey))
					td.Slope = ParseSlope(tilesetTile.Properties.GetString(slopeKey))
					if tilesetTile.Properties.GetString(collidableKey) == "false" {
						td.Collidable = false
					}
				}
				tiles = append(tiles, td)
			}
		}
		byIndex[index] = tiles
		if index > maxIndex {
			maxIndex = index
		}
	}

	if maxIndex < 0 {
		return nil, fmt.Errorf("load TMX %s: no %q tile layers", tmxPath, layerPrefix+"0")
	}
	data.Layers = make([][]TileData, maxIndex+1)
	for i := range data.Layers {
		tiles, ok := byIndex[i]
		if !ok {
			return nil, fmt.Errorf("load TMX %s: missing tile layer %s%d", tmxPath, layerPrefix, i)
		}
		data.Layers[i] = tiles
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != spawnGroupName {
			continue
		}
		for _, o := range og.Objects {
			sp := SpawnPoint{
				Kind:  SpawnKind(strings.ToLower(o.Name)),
				Col:   int(o.X) / data.TileW,
				Row:   int(o.Y) / data.TileH,
				Layer: o.Properties.GetInt(spawnLayerKey),
			}
			if sp.Layer < 0 || sp.Layer >= len(data.Layers) {
				return nil, fmt.Errorf("load TMX %s: spawn %q on missing layer %d", tmxPath, o.Name, sp.Layer)
			}
			switch sp.Kind {
			case SpawnPlayer:
				data.PlayerStart = sp
				foundPlayer = true
			case SpawnWalker, SpawnGoal:
				data.Spawns = append(data.Spawns, sp)
			default:
				fmt.Printf("Warning: unknown spawn %q in %s\n", o.Name, tmxPath)
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("load TMX %s: no player spawn", tmxPath)
	}

	// Sort spawns left-to-right for a stable creation order
	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Col < data.Spawns[j].Col
	})

	return data, nil
}

func layerIndex(name string) (int, bool) {
	if !strings.HasPrefix(name, layerPrefix) {
		return 0, false
	}
	index, err := strconv.Atoi(strings.TrimPrefix(name, layerPrefix))
	if err != nil || index < 0 {
		return 0, false
	}
	return index, true
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevelData(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
