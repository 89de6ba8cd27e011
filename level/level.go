package level

import (
	"log"
	"sort"

	"github.com/automoto/layerhop/config"
	"github.com/automoto/layerhop/shared/gamemath"
	"github.com/automoto/layerhop/shared/leveldata"
	"github.com/automoto/layerhop/tags"
	"github.com/solarlune/resolv"
)

type cellKey struct{ x, y int }

// Layer holds the blocks of one depth layer and their collision space.
type Layer struct {
	Index  int
	Space  *resolv.Space
	Blocks []*Block

	cells    map[cellKey]*Block
	grounds  map[int][]*Block
	byObject map[*resolv.Object]*Block
}

// Level is the loaded, read-only tile grid of every layer.
type Level struct {
	Name          string
	TileW, TileH  int
	Width, Height int // pixel size of one layer
	Step          int // vertical pixel offset between adjacent layers

	Gravity      float64
	GravityAccel float64
	Keys         int

	PlayerStart leveldata.SpawnPoint
	Spawns      []leveldata.SpawnPoint

	layers []*Layer
}

// New builds the per-layer spaces and lookup tables from parsed level data.
func New(data *leveldata.LevelData) *Level {
	lvl := &Level{
		Name:         data.Name,
		TileW:        data.TileW,
		TileH:        data.TileH,
		Width:        data.Width(),
		Height:       data.Height(),
		Step:         config.Layers.Step,
		Gravity:      data.Gravity,
		GravityAccel: data.GravityAccel,
		Keys:         data.Keys,
		PlayerStart:  data.PlayerStart,
		Spawns:       data.Spawns,
	}
	if lvl.Gravity == 0 {
		lvl.Gravity = config.Physics.Gravity
	}
	if lvl.GravityAccel == 0 {
		lvl.GravityAccel = config.Physics.GravityAccel
	}

	spaceH := lvl.Height + lvl.Step*len(data.Layers) + lvl.TileH
	blockCount := 0
	for index, tiles := range data.Layers {
		layer := &Layer{
			Index:    index,
			Space:    resolv.NewSpace(lvl.Width, spaceH, lvl.TileW, lvl.TileH),
			cells:    make(map[cellKey]*Block, len(tiles)),
			grounds:  make(map[int][]*Block),
			byObject: make(map[*resolv.Object]*Block, len(tiles)),
		}

		for _, td := range tiles {
			box := gamemath.NewRect(td.Col*lvl.TileW, td.Row*lvl.TileH+lvl.Step*index, lvl.TileW, lvl.TileH)
			b := &Block{
				Layer:      index,
				Col:        td.Col,
				Row:        td.Row,
				CellX:      gamemath.FloorDiv(box.X, lvl.TileW),
				CellY:      gamemath.FloorDiv(box.Y, lvl.TileH),
				Box:        box,
				Collidable: td.Collidable,
				Props:      td.Props,
				Slope:      td.Slope,
			}

			obj := resolv.NewObject(float64(box.X), float64(box.Y), float64(box.W), float64(box.H), blockTags(b)...)
			obj.SetShape(resolv.NewRectangle(0, 0, float64(box.W), float64(box.H)))
			layer.Space.Add(obj)
			b.object = obj

			layer.Blocks = append(layer.Blocks, b)
			layer.cells[cellKey{b.CellX, b.CellY}] = b
			layer.byObject[obj] = b
			if b.IsGround() {
				layer.grounds[b.CellX] = append(layer.grounds[b.CellX], b)
			}
		}

		for _, column := range layer.grounds {
			sort.Slice(column, func(i, j int) bool { return column[i].Box.Y < column[j].Box.Y })
		}

		blockCount += len(layer.Blocks)
		lvl.layers = append(lvl.layers, layer)
	}

	log.Printf("Loaded level %s: %d layers, %d blocks, %dx%d map",
		lvl.Name, len(lvl.layers), blockCount, lvl.Width, lvl.Height)

	return lvl
}

func blockTags(b *Block) []string {
	var t []string
	if b.Collidable {
		t = append(t, tags.ResolvSolid)
	}
	if b.Slope != leveldata.SlopeNone {
		t = append(t, tags.ResolvRamp)
	}
	if b.Has(leveldata.PropSwim) {
		t = append(t, tags.ResolvWater)
	}
	if b.Has(leveldata.PropHazard) {
		t = append(t, tags.ResolvHazard)
	}
	if b.Has(leveldata.PropKeyhole) {
		t = append(t, tags.ResolvKeyhole)
	}
	return t
}

func (l *Level) LayerCount() int { return len(l.layers) }

// Layer returns the layer at index, or nil when out of range.
func (l *Level) Layer(index int) *Layer {
	if index < 0 || index >= len(l.layers) {
		return nil
	}
	return l.layers[index]
}

// BlockAt returns the block indexed at world cell (cx, cy) on a layer.
func (l *Level) BlockAt(layer, cx, cy int) *Block {
	ly := l.Layer(layer)
	if ly == nil {
		return nil
	}
	return ly.cells[cellKey{cx, cy}]
}

// GroundColumn returns the ground blocks of a cell column, top to bottom.
func (l *Level) GroundColumn(layer, cx int) []*Block {
	ly := l.Layer(layer)
	if ly == nil {
		return nil
	}
	return ly.grounds[cx]
}

func (l *Level) WorldBounds() (int, int) { return l.Width, l.Height }

func (l *Level) TileSize() (int, int) { return l.TileW, l.TileH }

// LayerOffset is the vertical pixel shift applied to everything on a layer.
func (l *Level) LayerOffset(layer int) int { return l.Step * layer }

// SpawnPosition places a w×h box centred on the spawn tile with its bottom
// on the tile bottom.
func (l *Level) SpawnPosition(sp leveldata.SpawnPoint, w, h int) gamemath.Rect {
	x := sp.Col*l.TileW + (l.TileW-w)/2
	y := sp.Row*l.TileH + l.LayerOffset(sp.Layer) + l.TileH - h
	return gamemath.NewRect(x, y, w, h)
}

// Blocked reports whether box overlaps any collidable block of a layer.
// Layers outside the level are always blocked.
func (l *Level) Blocked(layer int, box gamemath.Rect) bool {
	return len(l.Overlapping(layer, box, tags.ResolvSolid)) > 0 || l.Layer(layer) == nil
}

// Overlapping returns the blocks of a layer carrying tag whose boxes overlap
// box, using the layer space to narrow the candidates.
func (l *Level) Overlapping(layer int, box gamemath.Rect, tag string) []*Block {
	ly := l.Layer(layer)
	if ly == nil {
		return nil
	}

	probe := resolv.NewObject(float64(box.X), float64(box.Y), float64(box.W), float64(box.H), tags.ResolvProbe)
	ly.Space.Add(probe)
	defer ly.Space.Remove(probe)

	check := probe.Check(0, 0, tag)
	if check == nil {
		return nil
	}

	var found []*Block
	for _, obj := range check.Objects {
		b := ly.byObject[obj]
		if b != nil && box.Overlaps(b.Box) {
			found = append(found, b)
		}
	}
	return found
}
