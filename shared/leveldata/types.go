// Package leveldata provides TMX level parsing for the game and the headless
// simulator. It has no dependencies on ebitengine, donburi, or resolv. Pure data only.
package leveldata

import "strings"

// Props is the set of behaviours a tile contributes on contact.
type Props uint16

const (
	PropLeftWall  Props = 1 << iota // blocks entry from the left
	PropRightWall                   // blocks entry from the right
	PropUpWall                      // floor, landed on from above
	PropDownWall                    // ceiling, hit from below
	PropSlow
	PropSwim
	PropMud
	PropHazard
	PropNoSlide
	PropKeyhole
)

// PropSolid is a full block: walls on every side.
const PropSolid = PropLeftWall | PropRightWall | PropUpWall | PropDownWall

var propLetters = []struct {
	letter rune
	prop   Props
}{
	{'l', PropLeftWall},
	{'r', PropRightWall},
	{'u', PropUpWall},
	{'d', PropDownWall},
	{'s', PropSlow},
	{'w', PropSwim},
	{'m', PropMud},
	{'k', PropHazard},
	{'n', PropNoSlide},
}

// ParseProps converts a Tiled "prop" string into a Props set. The word
// "keyhole" marks a keyhole; any other token contributes one flag per letter
// (l r u d s w m k n). Tokens are separated by spaces or commas and unknown
// letters are ignored.
func ParseProps(s string) Props {
	var p Props
	for _, token := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' }) {
		if token == "keyhole" {
			p |= PropKeyhole
			continue
		}
		for _, r := range token {
			for _, pl := range propLetters {
				if pl.letter == r {
					p |= pl.prop
				}
			}
		}
	}
	return p
}

func (p Props) Has(flag Props) bool {
	return p&flag == flag
}

func (p Props) String() string {
	var sb strings.Builder
	for _, pl := range propLetters {
		if p.Has(pl.prop) {
			sb.WriteRune(pl.letter)
		}
	}
	if p.Has(PropKeyhole) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("keyhole")
	}
	return sb.String()
}

// Slope is the direction a ramp tile rises toward.
type Slope uint8

const (
	SlopeNone  Slope = iota
	SlopeLeft        // rises toward the left edge
	SlopeRight       // rises toward the right edge
)

// ParseSlope accepts "l"/"left"/"45_up_left" and "r"/"right"/"45_up_right".
func ParseSlope(s string) Slope {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "l", "left", "45_up_left":
		return SlopeLeft
	case "r", "right", "45_up_right":
		return SlopeRight
	}
	return SlopeNone
}

// SpawnKind names what a spawn object places.
type SpawnKind string

const (
	SpawnPlayer SpawnKind = "player"
	SpawnWalker SpawnKind = "walker"
	SpawnGoal   SpawnKind = "goal"
)

// SpawnPoint is a tile placement on a layer.
type SpawnPoint struct {
	Kind  SpawnKind
	Col   int
	Row   int
	Layer int
}

// TileData is one tile of a layer, in tile coordinates.
type TileData struct {
	Col, Row   int
	Props      Props
	Slope      Slope
	Collidable bool
}

// LevelData holds everything parsed from a TMX level file.
type LevelData struct {
	Name         string
	Cols, Rows   int
	TileW, TileH int
	Layers       [][]TileData // index = depth layer, 0 is the back
	Spawns       []SpawnPoint
	PlayerStart  SpawnPoint
	Gravity      float64 // 0 means use the default
	GravityAccel float64 // 0 means use the default
	Keys         int
}

// Width returns the map width in pixels.
func (d *LevelData) Width() int { return d.Cols * d.TileW }

// Height returns the map height in pixels.
func (d *LevelData) Height() int { return d.Rows * d.TileH }
